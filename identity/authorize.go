package identity

import (
	"errors"
	"strings"

	"restaurant-foh/models"
)

// Resource is a protected area of the front of house.
type Resource string

const (
	ResourceKitchen   Resource = "kitchen"
	ResourceReception Resource = "reception"
	ResourceOwner     Resource = "owner"
	ResourceSupplier  Resource = "supplier"
)

// Subject is who is asking.
type Subject struct {
	UserID string
	Email  string
	Role   models.UserRole
}

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
)

// Policy maps each resource to the roles allowed to reach it.
var Policy = map[Resource][]models.UserRole{
	ResourceKitchen:   {models.RoleKitchen, models.RoleAdmin},
	ResourceReception: {models.RoleReception, models.RoleAdmin},
	ResourceOwner:     {models.RoleOwner, models.RoleAdmin},
	ResourceSupplier:  {models.RoleSupplier, models.RoleAdmin},
}

// Authorize checks the subject against the roles required for resource.
// Resources missing from Policy are denied.
func Authorize(sub Subject, resource Resource) error {
	if sub.UserID == "" {
		return ErrUnauthenticated
	}
	roles, ok := Policy[resource]
	if !ok {
		return &AccessError{Resource: resource}
	}
	for _, r := range roles {
		if sub.Role == r {
			return nil
		}
	}
	return &AccessError{Resource: resource, Required: roles}
}

// AccessError is returned when the subject's role is not allowed.
type AccessError struct {
	Resource Resource
	Required []models.UserRole
}

func (e *AccessError) Error() string {
	if len(e.Required) == 0 {
		return "access denied to " + string(e.Resource)
	}
	names := make([]string, len(e.Required))
	for i, r := range e.Required {
		names[i] = string(r)
	}
	return "Access denied. Required role(s): " + strings.Join(names, ", ")
}

func (e *AccessError) Unwrap() error { return ErrForbidden }
