package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-foh/models"
)

const OrdersCollection = "orders"

// OrderArchive mirrors confirmed orders into the document store. It
// satisfies store.Archiver.
type OrderArchive struct {
	Docs *Documents
}

func (a OrderArchive) Archive(ctx context.Context, o models.Order) error {
	return a.Docs.Put(ctx, OrdersCollection, o.ID, o)
}

// Orders lists every archived order, oldest first.
func (a OrderArchive) Orders(ctx context.Context) ([]models.Order, error) {
	docs, err := a.Docs.ReadAll(ctx, OrdersCollection)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		var o models.Order
		if err := json.Unmarshal(doc.Data, &o); err != nil {
			return nil, fmt.Errorf("decode order %s: %w", doc.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
