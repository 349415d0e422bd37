package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"restaurant-foh/models"
	"restaurant-foh/statemachine"
)

// GetMenu returns the menu grouped by category (public)
func (h *Handler) GetMenu(c *gin.Context) {
	st := h.Store.Snapshot()

	category := c.Query("category")
	grouped := map[string][]models.MenuItem{}
	count := 0
	for _, item := range st.MenuItems {
		if category != "" && item.Category != category {
			continue
		}
		grouped[item.Category] = append(grouped[item.Category], item)
		count++
	}

	categories := make([]string, 0, len(grouped))
	for name := range grouped {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	c.JSON(http.StatusOK, gin.H{
		"count":      count,
		"categories": categories,
		"menu":       grouped,
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"statuses":        models.AllStatuses,
		"terminal_states": []models.OrderStatus{models.StatusDelivered},
		"enforced":        h.StrictTransitions,
		"policy": gin.H{
			"remove":        h.Store.Policy().Remove,
			"require_table": h.Store.Policy().RequireTable,
		},
		"description": "Front-of-house order lifecycle",
	})
}
