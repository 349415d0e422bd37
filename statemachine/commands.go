package statemachine

import (
	"github.com/shopspring/decimal"

	"restaurant-foh/models"
)

// Command is the closed set of inputs accepted by the reducer.
type Command interface {
	command()
}

// AddItem puts one unit of Item into the draft order, creating the draft if needed.
type AddItem struct {
	Item models.MenuItem
}

// RemoveItem removes the line for MenuItemID according to the reducer's RemovePolicy.
type RemoveItem struct {
	MenuItemID string
}

// SetQuantity sets the absolute quantity of a line; zero or less removes it.
type SetQuantity struct {
	MenuItemID string
	Quantity   int
}

// AddTip sets the tip to Amount. It does not add to an existing tip.
type AddTip struct {
	Amount decimal.Decimal
}

// AddTipPercent sets the tip to Percent of the current subtotal.
type AddTipPercent struct {
	Percent decimal.Decimal
}

type SetTable struct {
	Table string
}

type ConfirmOrder struct{}

// ClearOrder discards the draft.
type ClearOrder struct{}

type ToggleCart struct{}

type UpdateOrderStatus struct {
	OrderID string
	Status  models.OrderStatus
}

type UpdateItemAvailability struct {
	MenuItemID string
	Available  bool
}

func (AddItem) command()                {}
func (RemoveItem) command()             {}
func (SetQuantity) command()            {}
func (AddTip) command()                 {}
func (AddTipPercent) command()          {}
func (SetTable) command()               {}
func (ConfirmOrder) command()           {}
func (ClearOrder) command()             {}
func (ToggleCart) command()             {}
func (UpdateOrderStatus) command()      {}
func (UpdateItemAvailability) command() {}
