package models

import (
	"time"
)

// UserRole defines allowed staff and customer roles
type UserRole string

const (
	RoleCustomer  UserRole = "customer"
	RoleKitchen   UserRole = "kitchen"
	RoleReception UserRole = "reception"
	RoleOwner     UserRole = "owner"
	RoleSupplier  UserRole = "supplier"
	RoleAdmin     UserRole = "admin"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleKitchen, RoleReception, RoleOwner, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
