// Package analytics aggregates the order history for the owner dashboard.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"restaurant-foh/models"
	"restaurant-foh/statemachine"
)

type Summary struct {
	TotalSales        decimal.Decimal            `json:"total_sales"`
	TotalOrders       int                        `json:"total_orders"`
	AverageOrderValue decimal.Decimal            `json:"average_order_value"`
	UnavailableItems  int                        `json:"unavailable_items"`
	DeliveredRevenue  decimal.Decimal            `json:"delivered_revenue"`
	OrdersByStatus    map[models.OrderStatus]int `json:"orders_by_status"`
}

type PopularItem struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// Summarize totals every order in history. Drafts never reach history, but
// one that did would be skipped.
func Summarize(s statemachine.State) Summary {
	sum := Summary{
		TotalSales:       decimal.Zero,
		DeliveredRevenue: decimal.Zero,
		OrdersByStatus:   map[models.OrderStatus]int{},
	}
	for _, o := range s.Orders {
		if o.Status == models.StatusDraft {
			continue
		}
		sum.TotalOrders++
		sum.TotalSales = sum.TotalSales.Add(o.Total)
		sum.OrdersByStatus[o.Status]++
		if o.Status == models.StatusDelivered {
			sum.DeliveredRevenue = sum.DeliveredRevenue.Add(o.Total)
		}
	}
	sum.AverageOrderValue = decimal.Zero
	if sum.TotalOrders > 0 {
		sum.AverageOrderValue = sum.TotalSales.Div(decimal.NewFromInt(int64(sum.TotalOrders))).Round(2)
	}
	sum.UnavailableItems = len(InventoryNeeds(s))
	return sum
}

// PopularItems ranks menu items by quantity ordered. Revenue is taken from
// the prices on the order lines. n <= 0 returns all.
func PopularItems(s statemachine.State, n int) []PopularItem {
	byID := map[string]*PopularItem{}
	for _, o := range s.Orders {
		if o.Status == models.StatusDraft {
			continue
		}
		for _, l := range o.Lines {
			p, ok := byID[l.MenuItemID]
			if !ok {
				p = &PopularItem{MenuItemID: l.MenuItemID, Name: "Unknown Item", Revenue: decimal.Zero}
				if item, found := s.MenuItem(l.MenuItemID); found {
					p.Name = item.Name
				}
				byID[l.MenuItemID] = p
			}
			p.Count += l.Quantity
			p.Revenue = p.Revenue.Add(l.LineTotal())
		}
	}

	items := make([]PopularItem, 0, len(byID))
	for _, p := range byID {
		items = append(items, *p)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MenuItemID < items[j].MenuItemID
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// InventoryNeeds lists menu items currently marked unavailable.
func InventoryNeeds(s statemachine.State) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range s.MenuItems {
		if !item.Available {
			out = append(out, item)
		}
	}
	return out
}
