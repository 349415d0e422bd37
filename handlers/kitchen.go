package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"restaurant-foh/middleware"
	"restaurant-foh/models"
	"restaurant-foh/statemachine"
	"restaurant-foh/store"
)

// GetKitchenOrders returns active orders, oldest first
func (h *Handler) GetKitchenOrders(c *gin.Context) {
	st := h.Store.Snapshot()
	active := make([]models.Order, 0)
	for _, o := range st.Orders {
		if o.Status == models.StatusConfirmed || o.Status == models.StatusPreparing {
			active = append(active, o)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].CreatedAt.Before(active[j].CreatedAt) })

	c.JSON(http.StatusOK, gin.H{"count": len(active), "orders": active})
}

// GetKitchenMenu returns every menu item including unavailable ones
func (h *Handler) GetKitchenMenu(c *gin.Context) {
	st := h.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"count": len(st.MenuItems), "menu": st.MenuItems})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,orderstatus"`
}

// UpdateOrderStatus moves an order in history to a new status
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, _ := middleware.GetSubject(c)
	prev, err := h.Store.UpdateStatus(orderID, req.Status, sub.Role, h.StrictTransitions)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case errors.Is(err, statemachine.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    prev,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(prev),
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        orderID,
		"previous_status": prev,
		"current_status":  req.Status,
	})
}

type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// UpdateItemAvailability marks a menu item as available or sold out
func (h *Handler) UpdateItemAvailability(c *gin.Context) {
	itemID := c.Param("itemId")

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.Store.Snapshot().MenuItem(itemID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	st := h.Store.Dispatch(statemachine.UpdateItemAvailability{MenuItemID: itemID, Available: *req.Available})
	item, _ := st.MenuItem(itemID)

	title, state := "Item Unavailable", "unavailable"
	if item.Available {
		title, state = "Item Available", "available"
	}
	body := notification(title, "The item has been marked as "+state+".", false)
	body["item"] = item
	c.JSON(http.StatusOK, body)
}
