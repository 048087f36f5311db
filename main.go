package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pizzastore/authz"
	"pizzastore/config"
	"pizzastore/handlers"
	"pizzastore/pkg/logger"
	"pizzastore/routes"
	"pizzastore/services"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database; a failed connection here is fatal
	config.InitDB()
	if err := config.SeedManager(config.DB); err != nil {
		logger.Log.Fatal("failed to seed bootstrap manager", zap.Error(err))
	}
	if err := config.SeedStores(config.DB); err != nil {
		logger.Log.Fatal("failed to seed store directory", zap.Error(err))
	}

	// Authorization policy: capability-to-role mapping consulted by
	// every mutating service operation
	policy := authz.NewPolicy(config.DB, authz.Config{
		DriverCanDeliver: config.DriverCanDeliver(),
	})

	userService := services.NewUserService(config.DB, policy)
	menuService := services.NewMenuService(config.DB, policy)
	orderService := services.NewOrderService(config.DB, policy)
	storeService := services.NewStoreService(config.DB)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Pizza Store Order Management API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, routes.Handlers{
		Auth:   handlers.NewAuthHandler(userService),
		Users:  handlers.NewUserHandler(userService),
		Menu:   handlers.NewMenuHandler(menuService),
		Orders: handlers.NewOrderHandler(orderService),
		Stores: handlers.NewStoreHandler(storeService),
	})

	port := config.Port()
	logger.Log.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("failed to start server", zap.Error(err))
	}
}
