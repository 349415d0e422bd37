package handlers

import (
	"io"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"restaurant-foh/models"
)

// GetReceptionOrders groups the order history by status, newest first
func (h *Handler) GetReceptionOrders(c *gin.Context) {
	st := h.Store.Snapshot()

	orders := append([]models.Order(nil), st.Orders...)
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	grouped := map[models.OrderStatus][]models.Order{
		models.StatusConfirmed: {},
		models.StatusPreparing: {},
		models.StatusReady:     {},
		models.StatusDelivered: {},
	}
	counts := map[models.OrderStatus]int{}
	for _, o := range orders {
		if _, tracked := grouped[o.Status]; !tracked {
			continue
		}
		grouped[o.Status] = append(grouped[o.Status], o)
		counts[o.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": counts,
		"count":         len(orders),
		"orders":        grouped,
	})
}

// StreamNewOrders pushes a server-sent event for each order placed while the
// client stays connected
func (h *Handler) StreamNewOrders(c *gin.Context) {
	feed := h.Store.NewOrders(c.Request.Context(), 16)
	c.Stream(func(w io.Writer) bool {
		o, ok := <-feed
		if !ok {
			return false
		}
		c.SSEvent("order", gin.H{
			"title":       "New Order Received!",
			"description": "Order #" + shortID(o.ID) + " has been placed.",
			"order":       o,
		})
		return true
	})
}
