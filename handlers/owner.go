package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-foh/analytics"
)

// GetOwnerDashboard aggregates sales, popular items and inventory needs
func (h *Handler) GetOwnerDashboard(c *gin.Context) {
	st := h.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"summary":         analytics.Summarize(st),
		"popular_items":   analytics.PopularItems(st, 5),
		"inventory_needs": analytics.InventoryNeeds(st),
	})
}

// GetArchivedOrders lists orders mirrored to the document store
func (h *Handler) GetArchivedOrders(c *gin.Context) {
	if h.Archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Order archive is not configured"})
		return
	}
	orders, err := h.Archive.Orders(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("read order archive")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read order archive"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
