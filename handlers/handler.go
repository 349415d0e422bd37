package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"restaurant-foh/identity"
	"restaurant-foh/inventory"
	"restaurant-foh/models"
	"restaurant-foh/store"
)

// ArchiveReader lists orders mirrored to persistent storage.
type ArchiveReader interface {
	Orders(ctx context.Context) ([]models.Order, error)
}

// Handler carries every dependency the HTTP views need. Nothing is looked up
// from package state. Session and Gate track the user signed in at this
// terminal.
type Handler struct {
	Store     *store.Store
	Identity  *identity.Service
	Session   *identity.Session
	Gate      *identity.Gate
	Inventory *inventory.Board
	Archive   ArchiveReader
	// StrictTransitions makes staff status updates follow the forward lifecycle.
	StrictTransitions bool
	Log               zerolog.Logger
}

// notification is the body of a user-facing, dismissible message.
func notification(title, description string, destructive bool) map[string]any {
	n := map[string]any{"title": title, "description": description}
	if destructive {
		n["variant"] = "destructive"
	}
	return map[string]any{"notification": n}
}

// shortID is the order reference shown to staff.
func shortID(id string) string {
	if len(id) > 5 {
		return id[:5]
	}
	return id
}
