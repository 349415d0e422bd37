package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"restaurant-foh/models"
	"restaurant-foh/statemachine"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the one canonical set of sample data used to bootstrap both the
// menu and the order history.
type Seed struct {
	Menu        []models.MenuItem   `yaml:"menu"`
	Orders      []SeedOrder         `yaml:"orders"`
	SupplyNeeds []models.SupplyNeed `yaml:"supply_needs"`
	Deliveries  []models.Delivery   `yaml:"deliveries"`
}

type SeedOrder struct {
	ID               string             `yaml:"id"`
	Table            string             `yaml:"table"`
	Status           models.OrderStatus `yaml:"status"`
	PlacedMinutesAgo int                `yaml:"placed_minutes_ago"`
	Tip              decimal.Decimal    `yaml:"tip"`
	Lines            []struct {
		MenuItemID string `yaml:"menu_item_id"`
		Quantity   int    `yaml:"quantity"`
	} `yaml:"lines"`
}

// LoadSeed parses the seed at path, or the embedded default when path is empty.
func LoadSeed(path string) (Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Seed{}, fmt.Errorf("read seed: %w", err)
		}
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return seed, nil
}

// InitialState builds the store state. Order lines take their name and price
// from the seeded menu so the two can never disagree. Menu and order ids must
// be unique and prices non-negative.
func (s Seed) InitialState(now time.Time) (statemachine.State, error) {
	menuIDs := make(map[string]bool, len(s.Menu))
	for _, item := range s.Menu {
		if item.ID == "" || menuIDs[item.ID] {
			return statemachine.State{}, fmt.Errorf("seed menu: duplicate or empty item id %q", item.ID)
		}
		if item.Price.IsNegative() {
			return statemachine.State{}, fmt.Errorf("seed menu item %s: negative price %s", item.ID, item.Price)
		}
		menuIDs[item.ID] = true
	}

	state := statemachine.State{
		MenuItems: append([]models.MenuItem(nil), s.Menu...),
		Orders:    make([]models.Order, 0, len(s.Orders)),
	}

	orderIDs := make(map[string]bool, len(s.Orders))
	for _, so := range s.Orders {
		if so.ID == "" || orderIDs[so.ID] {
			return statemachine.State{}, fmt.Errorf("seed orders: duplicate or empty order id %q", so.ID)
		}
		orderIDs[so.ID] = true
		if so.Tip.IsNegative() {
			return statemachine.State{}, fmt.Errorf("seed order %s: negative tip", so.ID)
		}
		if !so.Status.Valid() || so.Status == models.StatusDraft {
			return statemachine.State{}, fmt.Errorf("seed order %s: invalid status %q", so.ID, so.Status)
		}
		order := models.Order{
			ID:        so.ID,
			Status:    so.Status,
			Table:     so.Table,
			CreatedAt: now.Add(-time.Duration(so.PlacedMinutesAgo) * time.Minute),
			Tip:       so.Tip,
		}
		for _, l := range so.Lines {
			item, ok := state.MenuItem(l.MenuItemID)
			if !ok {
				return statemachine.State{}, fmt.Errorf("seed order %s: unknown menu item %q", so.ID, l.MenuItemID)
			}
			if l.Quantity < 1 {
				return statemachine.State{}, fmt.Errorf("seed order %s: quantity must be at least 1", so.ID)
			}
			order.Lines = append(order.Lines, models.OrderLine{
				MenuItemID: item.ID,
				Name:       item.Name,
				Price:      item.Price,
				Quantity:   l.Quantity,
			})
		}
		order.Total = models.CalculateTotal(order.Lines, order.Tip)
		state.Orders = append(state.Orders, order)
	}
	return state, nil
}
