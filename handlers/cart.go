package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-foh/statemachine"
)

func cartBody(st statemachine.State) gin.H {
	body := gin.H{
		"current_order": st.CurrentOrder,
		"is_cart_open":  st.IsCartOpen,
		"subtotal":      decimal.Zero,
		"tip":           decimal.Zero,
		"total":         decimal.Zero,
		"item_count":    0,
	}
	if o := st.CurrentOrder; o != nil {
		count := 0
		for _, l := range o.Lines {
			count += l.Quantity
		}
		body["subtotal"] = o.Subtotal()
		body["tip"] = o.Tip
		body["total"] = o.Total
		body["item_count"] = count
	}
	return body
}

// GetCart returns the draft order
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartBody(h.Store.Snapshot()))
}

type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
}

// AddToCart adds one unit of an available menu item to the draft
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := h.Store.Snapshot().MenuItem(req.MenuItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !item.Available {
		c.JSON(http.StatusUnprocessableEntity, notification("Item unavailable", "'"+item.Name+"' cannot be ordered right now", true))
		return
	}

	c.JSON(http.StatusOK, cartBody(h.Store.Dispatch(statemachine.AddItem{Item: item})))
}

// RemoveFromCart removes an item according to the configured remove policy
func (h *Handler) RemoveFromCart(c *gin.Context) {
	st := h.Store.Dispatch(statemachine.RemoveItem{MenuItemID: c.Param("itemId")})
	c.JSON(http.StatusOK, cartBody(st))
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartQuantity sets a line's quantity; zero or less removes the line
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st := h.Store.Dispatch(statemachine.SetQuantity{MenuItemID: c.Param("itemId"), Quantity: *req.Quantity})
	c.JSON(http.StatusOK, cartBody(st))
}

// TipRequest carries either an absolute amount or a percentage of the subtotal.
type TipRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	Percent *decimal.Decimal `json:"percent"`
}

// SetTip sets the draft's tip
func (h *Handler) SetTip(c *gin.Context) {
	var req TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cmd statemachine.Command
	switch {
	case req.Amount != nil && req.Percent == nil:
		cmd = statemachine.AddTip{Amount: *req.Amount}
	case req.Percent != nil && req.Amount == nil:
		cmd = statemachine.AddTipPercent{Percent: *req.Percent}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of amount or percent"})
		return
	}
	c.JSON(http.StatusOK, cartBody(h.Store.Dispatch(cmd)))
}

type SetTableRequest struct {
	Table string `json:"table" binding:"required"`
}

// SetTable records where the order should be served
func (h *Handler) SetTable(c *gin.Context) {
	var req SetTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartBody(h.Store.Dispatch(statemachine.SetTable{Table: req.Table})))
}

// ToggleCart opens or closes the cart panel
func (h *Handler) ToggleCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartBody(h.Store.Dispatch(statemachine.ToggleCart{})))
}

// ClearCart discards the draft
func (h *Handler) ClearCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartBody(h.Store.Dispatch(statemachine.ClearOrder{})))
}

// PlaceOrder confirms the draft and sends it to the kitchen
func (h *Handler) PlaceOrder(c *gin.Context) {
	placed, err := h.Store.PlaceOrder()
	switch {
	case errors.Is(err, statemachine.ErrEmptyOrder):
		c.JSON(http.StatusUnprocessableEntity, notification("Cannot place empty order", "Please add items to your order first", true))
		return
	case errors.Is(err, statemachine.ErrTableRequired):
		c.JSON(http.StatusUnprocessableEntity, notification("Table number required", "Please enter your table number before placing the order", true))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := notification("Order Confirmed!", "Your order has been sent to the kitchen", false)
	body["order"] = placed
	c.JSON(http.StatusCreated, body)
}
