package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/SaloneDigital/business_registry_app/cmd/docs"
	"github.com/SaloneDigital/business_registry_app/internal/core/services"
	"github.com/SaloneDigital/business_registry_app/internal/handlers"
	"github.com/SaloneDigital/business_registry_app/internal/middleware"
	"github.com/SaloneDigital/business_registry_app/internal/notifications"
	"github.com/SaloneDigital/business_registry_app/internal/platform/config"
	"github.com/SaloneDigital/business_registry_app/internal/repositories/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portsrepo "github.com/SaloneDigital/business_registry_app/internal/core/ports/repositories"
)

// @title SL Business Registry API
// @version 1.0
// @description National business registry backend: entity search, annual report filing and review, profile editing and audited change history.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory registry store, seeded with the demo registry snapshot.
	entityRepo := memory.NewEntityRepository()
	userRepo := memory.NewUserRepository()
	if err := memory.Seed(context.Background(), entityRepo, userRepo, services.SHA256Digest{}); err != nil {
		logger.Error("Failed to seed registry data", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Registry store seeded.")

	// Websocket hub for SMS simulation and the live activity feed.
	hub := notifications.NewHub(logger)
	go hub.Run()

	serviceContainer := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{
		EntityRepo: entityRepo,
		UserRepo:   userRepo,
	}, hub, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	handlers.RegisterRoutes(r, cfg, serviceContainer, hub)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
