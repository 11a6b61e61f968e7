package router

import (
	"gasgestor_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the authentication routes that require no token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.Register)
	group.POST("/login", authHandler.Login)
}

// SetupAuthenticatedAuthRoutes sets up the authentication routes behind the token check.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.Logout)
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	{
		dashboardRoutes.GET("/metrics", dashboardHandler.GetMetrics)
		dashboardRoutes.GET("/orders-per-day", dashboardHandler.GetOrdersPerDay)
		dashboardRoutes.GET("/revenue-per-day", dashboardHandler.GetRevenuePerDay)
	}
}

// SetupInventoryRoutes sets up the inventory routes.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := authenticatedGroup.Group("/inventory")
	{
		inventoryRoutes.GET("", inventoryHandler.ListItems)
		inventoryRoutes.GET("/metrics", inventoryHandler.GetMetrics)
		inventoryRoutes.POST("", inventoryHandler.CreateItem)
		inventoryRoutes.POST("/:id/adjust", inventoryHandler.AdjustStock)
	}
}

// SetupOrderRoutes sets up the order routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.ListOrders)
		orderRoutes.GET("/metrics", orderHandler.GetDeliveryMetrics)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
	}
}

// SetupBillingRoutes sets up the billing routes.
func SetupBillingRoutes(authenticatedGroup *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	billingRoutes := authenticatedGroup.Group("/billing")
	{
		billingRoutes.GET("/summary", billingHandler.GetSummary)
		billingRoutes.GET("/weekly", billingHandler.GetWeeklyBreakdown)
		billingRoutes.GET("/sales-by-product", billingHandler.GetSalesByProduct)
		billingRoutes.GET("/recent-activity", billingHandler.GetRecentActivity)
		billingRoutes.POST("/transactions", billingHandler.CreateTransaction)
	}
}

// SetupPaymentRoutes sets up the supplier payment routes.
func SetupPaymentRoutes(authenticatedGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := authenticatedGroup.Group("/payments")
	{
		paymentRoutes.GET("", paymentHandler.ListPayments)
		paymentRoutes.GET("/summary", paymentHandler.GetSummary)
		paymentRoutes.POST("", paymentHandler.CreatePayment)
		paymentRoutes.POST("/:id/settle", paymentHandler.SettlePayment)
	}
}
