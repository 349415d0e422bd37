package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a front-of-house order
type OrderStatus string

const (
	StatusDraft     OrderStatus = "draft"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// AllStatuses lists statuses in their forward order.
var AllStatuses = []OrderStatus{
	StatusDraft,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderLine is one menu item with a quantity. Name and Price are a
// snapshot taken when the item was first added to the order.
type OrderLine struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// LineTotal is price × quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// StatusChange is one entry of the in-memory audit trail of an order.
type StatusChange struct {
	From OrderStatus `json:"from"`
	To   OrderStatus `json:"to"`
	At   time.Time   `json:"at"`
}

type Order struct {
	ID        string          `json:"id"`
	Lines     []OrderLine     `json:"lines"`
	Status    OrderStatus     `json:"status"`
	Table     string          `json:"table"`
	CreatedAt time.Time       `json:"created_at"`
	Tip       decimal.Decimal `json:"tip"`
	Total     decimal.Decimal `json:"total"`
	History   []StatusChange  `json:"history,omitempty"`
}

// Subtotal sums the line totals, excluding the tip.
func (o Order) Subtotal() decimal.Decimal {
	return Subtotal(o.Lines)
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	c := o
	if o.Lines != nil {
		c.Lines = append([]OrderLine(nil), o.Lines...)
	}
	if o.History != nil {
		c.History = append([]StatusChange(nil), o.History...)
	}
	return c
}

// FindLine returns the index of the line for menuItemID, or -1.
func (o Order) FindLine(menuItemID string) int {
	for i, l := range o.Lines {
		if l.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

func Subtotal(lines []OrderLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// CalculateTotal is the only way an order total is produced: subtotal + tip.
func CalculateTotal(lines []OrderLine, tip decimal.Decimal) decimal.Decimal {
	return Subtotal(lines).Add(tip)
}
