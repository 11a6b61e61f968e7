package router

import (
	"database/sql"

	"gasgestor_backend/internal/handlers"
	"gasgestor_backend/internal/middleware"
	"gasgestor_backend/internal/repositories"
	"gasgestor_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	// Initialize Services
	authService := services.NewAuthService(authRepo, db)
	orderService := services.NewOrderService(orderRepo, inventoryRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, db)
	billingService := services.NewBillingService(transactionRepo, orderRepo, inventoryRepo, db)
	paymentService := services.NewPaymentService(paymentRepo, transactionRepo, db)
	dashboardService := services.NewDashboardService(orderRepo, inventoryRepo, transactionRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	billingHandler := handlers.NewBillingHandler(billingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
		SetupInventoryRoutes(authenticated, inventoryHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupBillingRoutes(authenticated, billingHandler)
		SetupPaymentRoutes(authenticated, paymentHandler)
	}
}
