package config

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-foh/models"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	if len(seed.Menu) != 6 {
		t.Errorf("len(Menu) = %d, want 6", len(seed.Menu))
	}
	if len(seed.SupplyNeeds) != 5 || len(seed.Deliveries) != 2 {
		t.Errorf("supply data = %d needs, %d deliveries", len(seed.SupplyNeeds), len(seed.Deliveries))
	}

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	state, err := seed.InitialState(now)
	if err != nil {
		t.Fatalf("InitialState() error = %v", err)
	}
	if state.CurrentOrder != nil {
		t.Error("seeded state should have no draft")
	}

	ord1, ok := state.Order("ord1")
	if !ok {
		t.Fatal("ord1 missing")
	}
	// 2 × 14.99 + 4.99
	if !ord1.Total.Equal(decimal.RequireFromString("34.97")) {
		t.Errorf("ord1 Total = %s, want 34.97", ord1.Total)
	}
	ord2, _ := state.Order("ord2")
	if ord2.Status != models.StatusPreparing {
		t.Errorf("ord2 Status = %q", ord2.Status)
	}
	if want := now.Add(-15 * time.Minute); !ord2.CreatedAt.Equal(want) {
		t.Errorf("ord2 CreatedAt = %v, want %v", ord2.CreatedAt, want)
	}
}

func TestInitialStateRejectsUnknownItems(t *testing.T) {
	seed, err := ParseSeed([]byte(`
menu:
  - id: "1"
    name: Soup
    price: "3.50"
orders:
  - id: o
    status: confirmed
    lines:
      - menu_item_id: "9"
        quantity: 1
`))
	if err != nil {
		t.Fatalf("ParseSeed() error = %v", err)
	}
	if _, err := seed.InitialState(time.Now()); err == nil || !strings.Contains(err.Error(), "unknown menu item") {
		t.Errorf("InitialState() error = %v, want unknown menu item", err)
	}
}

func TestInitialStateRejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicateMenuID",
			yaml: `
menu:
  - {id: "1", name: Soup, price: "3.50"}
  - {id: "1", name: Bread, price: "1.00"}
`,
			want: "duplicate or empty item id",
		},
		{
			name: "negativePrice",
			yaml: `
menu:
  - {id: "1", name: Soup, price: "-3.50"}
`,
			want: "negative price",
		},
		{
			name: "duplicateOrderID",
			yaml: `
menu:
  - {id: "1", name: Soup, price: "3.50"}
orders:
  - id: o
    status: confirmed
    lines: [{menu_item_id: "1", quantity: 1}]
  - id: o
    status: ready
    lines: [{menu_item_id: "1", quantity: 2}]
`,
			want: "duplicate or empty order id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := ParseSeed([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseSeed() error = %v", err)
			}
			if _, err := seed.InitialState(time.Now()); err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("InitialState() error = %v, want %q", err, tt.want)
			}
		})
	}
}
