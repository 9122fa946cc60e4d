package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library

	"virtualshop/internal/api"        // API handlers
	"virtualshop/internal/config"     // Configuration
	"virtualshop/internal/middleware" // Middleware
	"virtualshop/internal/repository" // Repositories
	"virtualshop/internal/service"    // Business services
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire repositories and services
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	authRequired := middleware.JWTAuthMiddleware(db, cfg.JWTSecret)
	adminOnly := middleware.AdminOnlyMiddleware(db)

	// Auth routes (registration and login are the only public endpoints)
	authGroup := r.Group("/auth")
	authGroup.POST("/register", api.RegisterHandler(authService))
	authGroup.POST("/login", api.LoginHandler(authService))
	authGroup.POST("/admin/register", authRequired, adminOnly, api.RegisterAdminHandler(authService))

	// Product routes (reads behind JWT, mutations admin only)
	productGroup := r.Group("/products")
	productGroup.Use(authRequired)
	productGroup.GET("", api.ListProductsHandler(productService, redisClient, cfg.CacheTTL))
	productGroup.GET("/search", api.SearchProductsHandler(productService, redisClient, cfg.CacheTTL))
	productGroup.GET("/best-sellers", api.BestSellersHandler(productService, redisClient, cfg.CacheTTL))
	productGroup.GET("/:id", api.GetProductHandler(productService))
	productGroup.POST("", adminOnly, api.CreateProductHandler(productService, redisClient))
	productGroup.PUT("/:id", adminOnly, api.UpdateProductHandler(productService, redisClient))
	productGroup.DELETE("/:id", adminOnly, api.DeleteProductHandler(productService, redisClient))

	// User routes
	userGroup := r.Group("/users")
	userGroup.Use(authRequired)
	userGroup.GET("/profile", api.ProfileHandler(userService))
	userGroup.PUT("/profile", api.UpdateProfileHandler(userService))
	userGroup.GET("", adminOnly, api.ListUsersHandler(userService, redisClient, cfg.CacheTTL))
	userGroup.GET("/:id", adminOnly, api.GetUserHandler(userService))
	userGroup.DELETE("/:id", adminOnly, api.DeactivateUserHandler(userService, redisClient))

	// Order routes
	orderGroup := r.Group("/orders")
	orderGroup.Use(authRequired)
	orderGroup.POST("", api.CreateOrderHandler(orderService))
	orderGroup.GET("/history", api.OrderHistoryHandler(orderService))
	orderGroup.GET("/admin/:id", adminOnly, api.GetOrderAdminHandler(orderService))
	orderGroup.GET("/:id", api.GetOrderHandler(orderService))

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort) // Start the server on port cfg.AppPort
}
