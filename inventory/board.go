// Package inventory tracks what the restaurant needs from its suppliers.
package inventory

import (
	"errors"
	"sync"

	"restaurant-foh/models"
)

var ErrNeedNotFound = errors.New("supply need not found")

type Stats struct {
	ItemsToDeliver int `json:"items_to_deliver"`
	Scheduled      int `json:"scheduled"`
	OutOfStock     int `json:"out_of_stock"`
}

// Board holds supply needs and the delivery log.
type Board struct {
	mu         sync.RWMutex
	needs      []models.SupplyNeed
	deliveries []models.Delivery
}

func NewBoard(needs []models.SupplyNeed, deliveries []models.Delivery) *Board {
	b := &Board{
		needs:      append([]models.SupplyNeed(nil), needs...),
		deliveries: make([]models.Delivery, len(deliveries)),
	}
	for i, d := range deliveries {
		d.Items = append([]models.DeliveryItem(nil), d.Items...)
		b.deliveries[i] = d
	}
	return b
}

func (b *Board) Needs() []models.SupplyNeed {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.SupplyNeed(nil), b.needs...)
}

func (b *Board) Deliveries() []models.Delivery {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Delivery, len(b.deliveries))
	for i, d := range b.deliveries {
		d.Items = append([]models.DeliveryItem(nil), d.Items...)
		out[i] = d
	}
	return out
}

// ScheduleDelivery puts a need on the next delivery. Scheduling twice is a no-op.
func (b *Board) ScheduleDelivery(id string) (models.SupplyNeed, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.needs {
		if b.needs[i].ID == id {
			b.needs[i].Scheduled = true
			return b.needs[i], nil
		}
	}
	return models.SupplyNeed{}, ErrNeedNotFound
}

// Stats summarises the board. outOfStock is the number of unavailable menu items.
func (b *Board) Stats(outOfStock int) Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	st := Stats{ItemsToDeliver: len(b.needs), OutOfStock: outOfStock}
	for _, n := range b.needs {
		if n.Scheduled {
			st.Scheduled++
		}
	}
	return st
}
