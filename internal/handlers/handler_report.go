package handlers

import (
	"net/http"
	"strconv"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles annual report filings and reviews.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportSvcFacade) {
	h := newReportHandler(rs)

	reports := rg.Group("/entities/:id/reports")
	{
		reports.POST("", middleware.RequireRoles(domain.RoleBusiness, domain.RoleAdmin), h.submitReport)
		reports.POST("/:year/review", middleware.RequireRoles(domain.RoleAdmin), h.reviewReport)
	}
}

// submitReport godoc
// @Summary File an annual report
// @Description Files (or re-files) the report for one fiscal year; re-filing replaces the prior record
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param report body dto.SubmitReportRequest true "Report figures"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id}/reports [post]
func (h *reportHandler) submitReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportService.SubmitReport(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit report")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// reviewReport godoc
// @Summary Approve or reject a submitted report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param year path int true "Fiscal year"
// @Param review body dto.ReviewReportRequest true "Review decision"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No submitted report for that year"
// @Security BearerAuth
// @Router /entities/{id}/reports/{year}/review [post]
func (h *reportHandler) reviewReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return
	}
	var req dto.ReviewReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportService.ReviewReport(c.Request.Context(), c.Param("id"), year, *req.Approve, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to review report")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
