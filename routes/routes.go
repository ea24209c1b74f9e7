package routes

import (
	"dine-in-api/handlers"
	"dine-in-api/middleware"
	"dine-in-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Staff auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Restaurants & menus (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)
		public.GET("/restaurants/:id/specials", handlers.GetSpecials)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)

		// Change subscription: any-change pings per restaurant
		public.GET("/ws/orders", handlers.SubscribeOrders)
	}

	// ── Diner routes (session-scoped, no accounts) ─────────────────
	diner := r.Group("/api")
	{
		diner.GET("/cart", handlers.GetCart)
		diner.DELETE("/cart", handlers.ClearCart)
		diner.POST("/cart/meals", handlers.AddMealToCart)
		diner.POST("/cart/drinks", handlers.AddDrinkToCart)
		diner.DELETE("/cart/lines/:index", handlers.RemoveCartLine)
		diner.PUT("/cart/lines/:index/increment", handlers.IncrementCartLine)
		diner.PUT("/cart/lines/:index/decrement", handlers.DecrementCartLine)
		diner.PUT("/cart/identity", handlers.SetCartIdentity)
		diner.POST("/cart/suggestion/dismiss", handlers.DismissSuggestion)

		diner.POST("/orders", handlers.PlaceOrder)
		diner.GET("/orders", handlers.GetTableOrders)
		diner.POST("/orders/:id/bill", handlers.RequestBill)
		diner.POST("/orders/:id/waiter", handlers.CallWaiter)
	}

	// ── Authenticated staff routes ─────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Staff dashboard routes ─────────────────────────────────────
	staff := r.Group("/api/staff")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
	{
		// Order views & transitions
		staff.GET("/orders", handlers.GetDashboardOrders)
		staff.GET("/badges", handlers.GetBadges)
		staff.PUT("/orders/:id/confirm", handlers.ConfirmOrder)
		staff.PUT("/orders/:id/serve", handlers.ServeOrder)
		staff.PUT("/orders/:id/close", handlers.CloseOrder)
		staff.PUT("/orders/:id/dismiss-bill", handlers.DismissBillRequest)
		staff.PUT("/orders/:id/dismiss-waiter", handlers.DismissWaiterCall)
		staff.PUT("/tables/:table/close", handlers.CloseTable)

		// Analytics
		staff.GET("/analytics", handlers.GetAnalytics)

		// Menu management
		staff.POST("/menu/meals", handlers.CreateMeal)
		staff.PUT("/menu/meals/:itemId", handlers.UpdateMeal)
		staff.DELETE("/menu/meals/:itemId", handlers.DeleteMeal)
		staff.POST("/menu/drinks", handlers.CreateDrink)
		staff.PUT("/menu/drinks/:itemId", handlers.UpdateDrink)
		staff.DELETE("/menu/drinks/:itemId", handlers.DeleteDrink)
		staff.POST("/menu/specials", handlers.CreateSpecial)
		staff.PUT("/menu/specials/:itemId", handlers.UpdateSpecial)
		staff.DELETE("/menu/specials/:itemId", handlers.DeleteSpecial)
		staff.POST("/menu/categories", handlers.CreateCategory)
		staff.DELETE("/menu/categories/:itemId", handlers.DeleteCategory)
	}
}
