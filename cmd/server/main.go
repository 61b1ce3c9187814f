package main

import (
	"fmt"
	"os"

	"github.com/propden/backend-go/internal/api"
	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/database"
	"github.com/propden/backend-go/internal/database/repository"
	"github.com/propden/backend-go/internal/database/service"
	"github.com/propden/backend-go/internal/handler"
	"github.com/propden/backend-go/internal/logger"
	"github.com/propden/backend-go/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Propden backend...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	listingRepo := repository.NewListingRepository(db)

	// 5. Initialize Cache Client
	cacheClient, err := database.NewCacheClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, serving without cache", "error", err)
		// Continue without Redis - every read degrades to a cache miss
		cacheClient = nil
	}
	defer cacheClient.Close()

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	propertyService := service.NewPropertyService(propertyRepo, cacheClient, cfg, appLogger)
	listingService := service.NewListingService(listingRepo, propertyRepo, userRepo, cacheClient, cfg, appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, cfg, appLogger)
	propertyHandler := handler.NewPropertyHandler(propertyService, appLogger)
	listingHandler := handler.NewListingHandler(listingService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	r := api.SetupRouter(cfg, authHandler, propertyHandler, listingHandler, authMiddleware)

	// 8. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
