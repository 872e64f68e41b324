package handlers

import (
	"github.com/SaloneDigital/business_registry_app/cmd/docs"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/middleware"
	"github.com/SaloneDigital/business_registry_app/internal/notifications"
	"github.com/SaloneDigital/business_registry_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting
// dependencies through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *notifications.Hub,
) {
	registerCustomValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/notifications", hub.ServeWS)

	// Public authentication routes (rate limited).
	registerAuthRoutes(r, cfg, services.Auth)

	// Read-only public registry surface.
	public := r.Group("/api/v1")
	{
		registerPublicEntityRoutes(public, services.Entity, services.Audit, services.Transaction, services.Report)
		registerAssistantRoutes(public, services.Assistant)
	}

	// Mutating surface behind session auth.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerEntityAdminRoutes(v1, services.Entity)
		registerReportRoutes(v1, services.Report)
		registerTransactionRoutes(v1, services.Transaction)
		registerDashboardRoutes(v1, services.Entity)
	}

	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidations wires registry-specific rules into gin's
// binding validator.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("legalform", func(fl validator.FieldLevel) bool {
			return domain.LegalForm(fl.Field().String()).IsValid()
		})
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// ErrorResponse is the generic error envelope returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
