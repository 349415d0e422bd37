package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"restaurant-foh/internal/testdb"
	"restaurant-foh/models"
)

func TestDocumentsCRUD(t *testing.T) {
	ctx := context.Background()
	docs := NewDocuments(testdb.Open(t))

	id, err := docs.Create(ctx, "notes", map[string]any{"text": "hello", "pinned": false})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var got map[string]any
	if err := docs.ReadInto(ctx, "notes", id, &got); err != nil {
		t.Fatalf("ReadInto() error = %v", err)
	}
	if got["text"] != "hello" {
		t.Errorf("text = %v, want hello", got["text"])
	}

	if err := docs.Update(ctx, "notes", id, map[string]any{"pinned": true}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got = nil
	if err := docs.ReadInto(ctx, "notes", id, &got); err != nil {
		t.Fatalf("ReadInto() error = %v", err)
	}
	if got["pinned"] != true || got["text"] != "hello" {
		t.Errorf("after update = %v, want merged fields", got)
	}

	if _, err := docs.Read(ctx, "other", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read() in another collection error = %v, want ErrNotFound", err)
	}

	if err := docs.Delete(ctx, "notes", id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := docs.Delete(ctx, "notes", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if err := docs.Update(ctx, "notes", id, map[string]any{"x": 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() after delete error = %v, want ErrNotFound", err)
	}
}

func TestOrderArchive(t *testing.T) {
	ctx := context.Background()
	archive := OrderArchive{Docs: NewDocuments(testdb.Open(t))}

	order := models.Order{
		ID:     "ord-1",
		Status: models.StatusConfirmed,
		Table:  "5",
		Lines: []models.OrderLine{
			{MenuItemID: "1", Name: "Classic Burger", Price: decimal.RequireFromString("12.99"), Quantity: 2},
		},
		Tip: decimal.RequireFromString("3.90"),
	}
	order.Total = models.CalculateTotal(order.Lines, order.Tip)

	if err := archive.Archive(ctx, order); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	order.Status = models.StatusReady
	if err := archive.Archive(ctx, order); err != nil {
		t.Fatalf("Archive() again error = %v", err)
	}

	orders, err := archive.Orders(ctx)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("len(Orders) = %d, want 1", len(orders))
	}
	if orders[0].Status != models.StatusReady {
		t.Errorf("Status = %q, want ready", orders[0].Status)
	}
	if !orders[0].Total.Equal(decimal.RequireFromString("29.88")) {
		t.Errorf("Total = %s, want 29.88", orders[0].Total)
	}
}
