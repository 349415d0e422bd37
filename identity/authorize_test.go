package identity

import (
	"errors"
	"testing"

	"restaurant-foh/models"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		sub      Subject
		resource Resource
		want     error
	}{
		{name: "kitchenStaff", sub: Subject{UserID: "1", Role: models.RoleKitchen}, resource: ResourceKitchen},
		{name: "adminEverywhere", sub: Subject{UserID: "1", Role: models.RoleAdmin}, resource: ResourceSupplier},
		{name: "ownerNotKitchen", sub: Subject{UserID: "1", Role: models.RoleOwner}, resource: ResourceKitchen, want: ErrForbidden},
		{name: "customerNotReception", sub: Subject{UserID: "1", Role: models.RoleCustomer}, resource: ResourceReception, want: ErrForbidden},
		{name: "anonymous", sub: Subject{Role: models.RoleAdmin}, resource: ResourceOwner, want: ErrUnauthenticated},
		{name: "unknownResource", sub: Subject{UserID: "1", Role: models.RoleAdmin}, resource: "cellar", want: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.sub, tt.resource)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Authorize() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Authorize() error = %v, want %v", err, tt.want)
			}
		})
	}
}
