package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-foh/handlers"
	"restaurant-foh/identity"
	"restaurant-foh/middleware"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	auth := middleware.AuthRequired(h.Identity)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
		public.POST("/auth/logout", h.Logout)

		public.GET("/session", h.GetSession)
		public.POST("/session/signin", h.SignInTerminal)

		public.GET("/menu", h.GetMenu)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Cart (the customer terminal) ───────────────────────────────
	cart := r.Group("/api/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddToCart)
		cart.PUT("/items/:itemId", h.UpdateCartQuantity)
		cart.DELETE("/items/:itemId", h.RemoveFromCart)
		cart.PUT("/tip", h.SetTip)
		cart.PUT("/table", h.SetTable)
		cart.POST("/toggle", h.ToggleCart)
		cart.POST("/clear", h.ClearCart)
		cart.POST("/place", h.PlaceOrder)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(auth)
	{
		authed.GET("/profile", h.GetProfile)
	}

	// ── Kitchen ────────────────────────────────────────────────────
	kitchen := r.Group("/api/kitchen")
	kitchen.Use(auth, middleware.RequireAccess(identity.ResourceKitchen))
	{
		kitchen.GET("/orders", h.GetKitchenOrders)
		kitchen.PUT("/orders/:id/status", h.UpdateOrderStatus)
		kitchen.GET("/menu", h.GetKitchenMenu)
		kitchen.PUT("/menu/:itemId/availability", h.UpdateItemAvailability)
	}

	// ── Reception ──────────────────────────────────────────────────
	reception := r.Group("/api/reception")
	reception.Use(auth, middleware.RequireAccess(identity.ResourceReception))
	{
		reception.GET("/orders", h.GetReceptionOrders)
		reception.PUT("/orders/:id/status", h.UpdateOrderStatus)
		reception.GET("/events", h.StreamNewOrders)
	}

	// ── Owner ──────────────────────────────────────────────────────
	owner := r.Group("/api/owner")
	owner.Use(auth, middleware.RequireAccess(identity.ResourceOwner))
	{
		owner.GET("/dashboard", h.GetOwnerDashboard)
		owner.PUT("/menu/:itemId/availability", h.UpdateItemAvailability)
		owner.GET("/archive", h.GetArchivedOrders)
	}

	// ── Supplier ───────────────────────────────────────────────────
	supplier := r.Group("/api/supplier")
	supplier.Use(auth, middleware.RequireAccess(identity.ResourceSupplier))
	{
		supplier.GET("/dashboard", h.GetSupplierDashboard)
		supplier.GET("/needs", h.GetSupplyNeeds)
		supplier.POST("/needs/:id/schedule", h.ScheduleSupplyDelivery)
		supplier.GET("/deliveries", h.GetDeliveries)
	}
}
