package inventory

import (
	"errors"
	"testing"

	"restaurant-foh/models"
)

func testBoard() *Board {
	return NewBoard(
		[]models.SupplyNeed{
			{ID: "1", Name: "Ground Beef", Priority: models.PriorityHigh, Scheduled: true},
			{ID: "2", Name: "Fresh Tomatoes", Priority: models.PriorityMedium},
		},
		[]models.Delivery{
			{ID: "DEL-001", Items: []models.DeliveryItem{{Name: "Ground Beef", Quantity: "15 kg"}}, Status: "Delivered"},
		},
	)
}

func TestScheduleDelivery(t *testing.T) {
	b := testBoard()

	need, err := b.ScheduleDelivery("2")
	if err != nil {
		t.Fatalf("ScheduleDelivery() error = %v", err)
	}
	if !need.Scheduled {
		t.Error("need should be scheduled")
	}
	if _, err := b.ScheduleDelivery("2"); err != nil {
		t.Errorf("scheduling twice error = %v", err)
	}
	if _, err := b.ScheduleDelivery("99"); !errors.Is(err, ErrNeedNotFound) {
		t.Errorf("ScheduleDelivery() unknown error = %v", err)
	}

	if st := b.Stats(3); st != (Stats{ItemsToDeliver: 2, Scheduled: 2, OutOfStock: 3}) {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestReadsAreCopies(t *testing.T) {
	b := testBoard()

	needs := b.Needs()
	needs[1].Scheduled = true
	if b.Stats(0).Scheduled != 1 {
		t.Error("Needs() leaked internal state")
	}

	deliveries := b.Deliveries()
	deliveries[0].Items[0].Quantity = "0 kg"
	if b.Deliveries()[0].Items[0].Quantity != "15 kg" {
		t.Error("Deliveries() leaked internal state")
	}
}
