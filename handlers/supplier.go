package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-foh/analytics"
	"restaurant-foh/inventory"
)

// GetSupplierDashboard summarises what needs delivering
func (h *Handler) GetSupplierDashboard(c *gin.Context) {
	outOfStock := analytics.InventoryNeeds(h.Store.Snapshot())
	c.JSON(http.StatusOK, gin.H{
		"stats":        h.Inventory.Stats(len(outOfStock)),
		"out_of_stock": outOfStock,
	})
}

func (h *Handler) GetSupplyNeeds(c *gin.Context) {
	needs := h.Inventory.Needs()
	c.JSON(http.StatusOK, gin.H{"count": len(needs), "needs": needs})
}

// ScheduleSupplyDelivery puts a supply need on the next delivery
func (h *Handler) ScheduleSupplyDelivery(c *gin.Context) {
	need, err := h.Inventory.ScheduleDelivery(c.Param("id"))
	if errors.Is(err, inventory.ErrNeedNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supply need not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	body := notification("Delivery Scheduled", need.Name+" has been scheduled for the next delivery.", false)
	body["need"] = need
	c.JSON(http.StatusOK, body)
}

func (h *Handler) GetDeliveries(c *gin.Context) {
	deliveries := h.Inventory.Deliveries()
	c.JSON(http.StatusOK, gin.H{"count": len(deliveries), "deliveries": deliveries})
}
