package handlers

import (
	"net/http"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	entityService portssvc.EntitySvcFacade
}

func registerDashboardRoutes(rg *gin.RouterGroup, es portssvc.EntitySvcFacade) {
	h := &dashboardHandler{entityService: es}
	rg.GET("/dashboard/summary", middleware.RequireRoles(domain.RoleAdmin), h.summary)
}

// summary godoc
// @Summary Registry dashboard counts
// @Description Aggregate registry figures for the registrar dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /dashboard/summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.entityService.DashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
