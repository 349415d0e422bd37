package statemachine

import (
	"errors"
	"testing"

	"restaurant-foh/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		actor   models.UserRole
		wantErr bool
	}{
		{name: "kitchenStartsPreparing", from: models.StatusConfirmed, to: models.StatusPreparing, actor: models.RoleKitchen},
		{name: "kitchenMarksReady", from: models.StatusPreparing, to: models.StatusReady, actor: models.RoleKitchen},
		{name: "receptionDelivers", from: models.StatusReady, to: models.StatusDelivered, actor: models.RoleReception},
		{name: "adminAnyForwardStep", from: models.StatusReady, to: models.StatusDelivered, actor: models.RoleAdmin},
		{name: "kitchenCannotDeliver", from: models.StatusReady, to: models.StatusDelivered, actor: models.RoleKitchen, wantErr: true},
		{name: "noBackwardsForAdmin", from: models.StatusDelivered, to: models.StatusDraft, actor: models.RoleAdmin, wantErr: true},
		{name: "noSkipping", from: models.StatusConfirmed, to: models.StatusReady, actor: models.RoleKitchen, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.actor)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CanTransition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("error should wrap ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	if got := ValidTransitionsFrom(models.StatusConfirmed); len(got) != 1 || got[0] != models.StatusPreparing {
		t.Errorf("ValidTransitionsFrom(confirmed) = %v", got)
	}
	if got := ValidTransitionsFrom(models.StatusDelivered); len(got) != 0 {
		t.Errorf("delivered should be terminal, got %v", got)
	}
}
