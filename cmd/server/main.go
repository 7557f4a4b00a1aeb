package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"tailor_shop/internal/config"
	"tailor_shop/internal/database"
	"tailor_shop/internal/handlers"
	"tailor_shop/internal/migrations"
	"tailor_shop/internal/redis"
	"tailor_shop/internal/repository"
	"tailor_shop/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo, redisClient, cacheTTL)
	orderService := services.NewOrderService(db, orderRepo, orderItemRepo, redisClient, cacheTTL)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(customerService, orderService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/customers", apiHandler.ListCustomers)
		api.POST("/customers", apiHandler.CreateCustomer)
		api.PUT("/customers/:id", apiHandler.UpdateCustomer)
		api.DELETE("/customers/:id", apiHandler.DeleteCustomer)
		api.GET("/customers/:id/orders", apiHandler.ListCustomerOrders)

		api.GET("/orders", apiHandler.ListOrders)
		api.POST("/orders", apiHandler.CreateOrder)
		api.GET("/orders/:id", apiHandler.GetOrder)
		api.GET("/orders/:id/form", apiHandler.GetOrderForm)
		api.PUT("/orders/:id", apiHandler.UpdateOrder)
		api.DELETE("/orders/:id", apiHandler.DeleteOrder)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
