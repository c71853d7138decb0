package routes

import (
	"restaurant-order-api/handlers"
	"restaurant-order-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu
		public.GET("/menu", handlers.GetMenu)
		public.POST("/menu", handlers.CreateDish)

		// Orders (payment is by deposit balance, identified by user_id)
		public.POST("/orders", handlers.PlaceOrder)
		public.GET("/orders/user/:id", handlers.GetUserOrders)

		// Wallet
		public.POST("/wallet/deposit", handlers.Deposit)

		// Assistant
		public.POST("/assistant/chat", handlers.Chat)
		public.POST("/assistant/recommend", handlers.Recommend)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Admin routes (unauthenticated: known gap in the reference) ─
	admin := r.Group("/api/admin")
	{
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PATCH("/users/:id/status", handlers.AdminUpdateUserStatus)
		admin.PATCH("/users/:id/role", handlers.AdminUpdateUserRole)
		admin.PATCH("/orders/:id/status", handlers.AdminUpdateOrderStatus)
	}
}
