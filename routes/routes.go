package routes

import (
	"github.com/gin-gonic/gin"

	"pizzastore/handlers"
	"pizzastore/metrics"
	"pizzastore/middleware"
)

// Handlers collects the per-surface handler sets wired in main.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Users  *handlers.UserHandler
	Menu   *handlers.MenuHandler
	Orders *handlers.OrderHandler
	Stores *handlers.StoreHandler
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)

		// Stores & menus (no auth needed)
		public.GET("/stores", h.Stores.ListStores)
		public.GET("/stores/:id/menu", h.Menu.GetMenu)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.Orders.GetStateMachineInfo)
	}

	// Prometheus scrape endpoint
	r.GET("/metrics", metrics.Handler())

	// ── Authenticated routes ───────────────────────────────────────
	// Capability-gated operations stay in this group too: the policy
	// resolves the caller's live role inside the service layer, so a
	// role change takes effect without reissuing tokens.
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		// Profile
		auth.GET("/profile", h.Auth.GetProfile)
		auth.PUT("/profile", h.Auth.UpdateProfile)

		// Orders
		auth.POST("/orders", h.Orders.PlaceOrder)
		auth.GET("/orders", h.Orders.GetMyOrders)
		auth.GET("/orders/recent", h.Orders.GetRecentOrders)
		auth.GET("/orders/:id", h.Orders.GetOrderDetail)
		auth.PUT("/orders/:id/deliver", h.Orders.DeliverOrder)

		// Menu management (editMenu capability)
		auth.POST("/menu", h.Menu.AddItem)
		auth.PUT("/menu/:itemName", h.Menu.UpdateItem)

		// User directory management (manageUsers capability)
		auth.GET("/users", h.Users.ListUsers)
		auth.POST("/users", h.Users.AddUser)
		auth.PUT("/users/:login", h.Users.UpdateUser)
		auth.DELETE("/users/:login", h.Users.DeleteUser)
	}
}
