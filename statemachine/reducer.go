package statemachine

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-foh/models"
)

// State is everything the order views read. CurrentOrder is nil when there is no draft.
type State struct {
	MenuItems    []models.MenuItem `json:"menu_items"`
	Orders       []models.Order    `json:"orders"`
	CurrentOrder *models.Order     `json:"current_order"`
	IsCartOpen   bool              `json:"is_cart_open"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := State{IsCartOpen: s.IsCartOpen}
	if s.MenuItems != nil {
		c.MenuItems = append([]models.MenuItem(nil), s.MenuItems...)
	}
	if s.Orders != nil {
		c.Orders = make([]models.Order, len(s.Orders))
		for i, o := range s.Orders {
			c.Orders[i] = o.Clone()
		}
	}
	if s.CurrentOrder != nil {
		o := s.CurrentOrder.Clone()
		c.CurrentOrder = &o
	}
	return c
}

// MenuItem looks an item up in the catalog.
func (s State) MenuItem(id string) (models.MenuItem, bool) {
	for _, item := range s.MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Order looks an order up in the history.
func (s State) Order(id string) (models.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// RemovePolicy selects how RemoveItem treats a line.
type RemovePolicy string

const (
	// RemoveDecrement takes one unit off and drops the line when it reaches zero.
	RemoveDecrement RemovePolicy = "decrement"
	// RemoveLine drops the whole line.
	RemoveLine RemovePolicy = "line"
)

type Policy struct {
	Remove       RemovePolicy
	RequireTable bool
}

// DefaultPolicy decrements on remove and requires a table before confirming.
var DefaultPolicy = Policy{Remove: RemoveDecrement, RequireTable: true}

var (
	ErrEmptyOrder    = errors.New("cannot place empty order")
	ErrTableRequired = errors.New("table number is required")
)

// ValidateConfirm reports why a ConfirmOrder would be rejected, or nil if it
// would succeed. Views call it before dispatching so they can notify the user.
func ValidateConfirm(s State, p Policy) error {
	if s.CurrentOrder == nil || len(s.CurrentOrder.Lines) == 0 {
		return ErrEmptyOrder
	}
	if p.RequireTable && strings.TrimSpace(s.CurrentOrder.Table) == "" {
		return ErrTableRequired
	}
	return nil
}

// Reducer computes the next State for a Command. It never mutates its input
// and never fails: malformed or inapplicable commands return the state as is.
type Reducer struct {
	Policy Policy
	Now    func() time.Time
	NewID  func() string
}

// NewReducer returns a Reducer with the wall clock and uuid ids.
func NewReducer(p Policy) Reducer {
	return Reducer{
		Policy: p,
		Now:    time.Now,
		NewID:  func() string { return uuid.NewString() },
	}
}

func (r Reducer) Reduce(s State, cmd Command) State {
	switch c := cmd.(type) {
	case AddItem:
		return r.addItem(s, c)
	case RemoveItem:
		return r.removeItem(s, c)
	case SetQuantity:
		return setQuantity(s, c)
	case AddTip:
		return addTip(s, c.Amount)
	case AddTipPercent:
		if s.CurrentOrder == nil {
			return s
		}
		tip := s.CurrentOrder.Subtotal().Mul(c.Percent).Div(decimal.NewFromInt(100)).Round(2)
		return addTip(s, tip)
	case SetTable:
		return r.setTable(s, c)
	case ConfirmOrder:
		return r.confirm(s)
	case ClearOrder:
		if s.CurrentOrder == nil {
			return s
		}
		s.CurrentOrder = nil
		return s
	case ToggleCart:
		s.IsCartOpen = !s.IsCartOpen
		return s
	case UpdateOrderStatus:
		return r.updateStatus(s, c)
	case UpdateItemAvailability:
		return updateAvailability(s, c)
	}
	return s
}

func (r Reducer) newDraft() *models.Order {
	return &models.Order{
		ID:        r.id(),
		Lines:     []models.OrderLine{},
		Status:    models.StatusDraft,
		CreatedAt: r.now(),
		Tip:       decimal.Zero,
		Total:     decimal.Zero,
	}
}

func (r Reducer) id() string {
	if r.NewID == nil {
		return uuid.NewString()
	}
	return r.NewID()
}

func (r Reducer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// draftCopy returns a detached copy of the draft, creating one if absent.
func (r Reducer) draftCopy(s State) *models.Order {
	if s.CurrentOrder == nil {
		return r.newDraft()
	}
	o := s.CurrentOrder.Clone()
	return &o
}

func withLines(s State, o *models.Order, lines []models.OrderLine) State {
	o.Lines = lines
	o.Total = models.CalculateTotal(o.Lines, o.Tip)
	s.CurrentOrder = o
	return s
}

func (r Reducer) addItem(s State, c AddItem) State {
	if c.Item.ID == "" {
		return s
	}
	o := r.draftCopy(s)
	lines := o.Lines
	if i := o.FindLine(c.Item.ID); i >= 0 {
		lines[i].Quantity++
	} else {
		lines = append(lines, models.OrderLine{
			MenuItemID: c.Item.ID,
			Name:       c.Item.Name,
			Price:      c.Item.Price,
			Quantity:   1,
		})
	}
	return withLines(s, o, lines)
}

func (r Reducer) removeItem(s State, c RemoveItem) State {
	if s.CurrentOrder == nil {
		return s
	}
	i := s.CurrentOrder.FindLine(c.MenuItemID)
	if i < 0 {
		return s
	}
	o := s.CurrentOrder.Clone()
	if r.Policy.Remove != RemoveLine && o.Lines[i].Quantity > 1 {
		o.Lines[i].Quantity--
		return withLines(s, &o, o.Lines)
	}
	return withLines(s, &o, deleteLine(o.Lines, i))
}

func setQuantity(s State, c SetQuantity) State {
	if s.CurrentOrder == nil {
		return s
	}
	i := s.CurrentOrder.FindLine(c.MenuItemID)
	if i < 0 {
		return s
	}
	o := s.CurrentOrder.Clone()
	if c.Quantity <= 0 {
		return withLines(s, &o, deleteLine(o.Lines, i))
	}
	o.Lines[i].Quantity = c.Quantity
	return withLines(s, &o, o.Lines)
}

func deleteLine(lines []models.OrderLine, i int) []models.OrderLine {
	out := make([]models.OrderLine, 0, len(lines)-1)
	out = append(out, lines[:i]...)
	return append(out, lines[i+1:]...)
}

func addTip(s State, amount decimal.Decimal) State {
	if s.CurrentOrder == nil {
		return s
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	o := s.CurrentOrder.Clone()
	o.Tip = amount
	return withLines(s, &o, o.Lines)
}

func (r Reducer) setTable(s State, c SetTable) State {
	o := r.draftCopy(s)
	o.Table = strings.TrimSpace(c.Table)
	s.CurrentOrder = o
	return s
}

func (r Reducer) confirm(s State) State {
	if ValidateConfirm(s, r.Policy) != nil {
		return s
	}
	o := s.CurrentOrder.Clone()
	now := r.now()
	o.History = append(o.History, models.StatusChange{From: o.Status, To: models.StatusConfirmed, At: now})
	o.Status = models.StatusConfirmed
	o.CreatedAt = now
	o.Total = models.CalculateTotal(o.Lines, o.Tip)

	orders := make([]models.Order, 0, len(s.Orders)+1)
	orders = append(orders, s.Orders...)
	s.Orders = append(orders, o)
	s.CurrentOrder = nil
	s.IsCartOpen = false
	return s
}

func (r Reducer) updateStatus(s State, c UpdateOrderStatus) State {
	if !c.Status.Valid() {
		return s
	}
	for i, o := range s.Orders {
		if o.ID != c.OrderID {
			continue
		}
		updated := o.Clone()
		updated.History = append(updated.History, models.StatusChange{From: o.Status, To: c.Status, At: r.now()})
		updated.Status = c.Status

		orders := append([]models.Order(nil), s.Orders...)
		orders[i] = updated
		s.Orders = orders
		return s
	}
	return s
}

func updateAvailability(s State, c UpdateItemAvailability) State {
	for i, item := range s.MenuItems {
		if item.ID != c.MenuItemID {
			continue
		}
		if item.Available == c.Available {
			return s
		}
		items := append([]models.MenuItem(nil), s.MenuItems...)
		items[i].Available = c.Available
		s.MenuItems = items
		return s
	}
	return s
}
