package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entityHandler handles HTTP requests related to registry entities.
type entityHandler struct {
	entityService      portssvc.EntitySvcFacade
	auditService       portssvc.AuditSvcFacade
	transactionService portssvc.TransactionSvcFacade
	reportService      portssvc.ReportSvcFacade
}

func newEntityHandler(es portssvc.EntitySvcFacade, as portssvc.AuditSvcFacade, ts portssvc.TransactionSvcFacade, rs portssvc.ReportSvcFacade) *entityHandler {
	return &entityHandler{
		entityService:      es,
		auditService:       as,
		transactionService: ts,
		reportService:      rs,
	}
}

// registerPublicEntityRoutes registers the read-only registry surface.
func registerPublicEntityRoutes(rg *gin.RouterGroup, es portssvc.EntitySvcFacade, as portssvc.AuditSvcFacade, ts portssvc.TransactionSvcFacade, rs portssvc.ReportSvcFacade) {
	h := newEntityHandler(es, as, ts, rs)

	entities := rg.Group("/entities")
	{
		entities.GET("", h.listEntities)
		entities.GET("/name-check", h.checkName)
		entities.GET("/:id", h.getEntity)
		entities.GET("/:id/history", h.listHistory)
		entities.GET("/:id/reports", h.listReports)
		entities.GET("/:id/transactions", h.listTransactions)
	}
}

// registerEntityAdminRoutes registers the mutating entity surface.
func registerEntityAdminRoutes(rg *gin.RouterGroup, es portssvc.EntitySvcFacade) {
	h := newEntityHandler(es, nil, nil, nil)

	entities := rg.Group("/entities")
	{
		entities.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createEntity)
		entities.PATCH("/:id", middleware.RequireRoles(domain.RoleAdmin, domain.RoleBusiness), h.updateEntity)
		entities.POST("/:id/status", middleware.RequireRoles(domain.RoleAdmin), h.changeStatus)
	}
}

// createEntity godoc
// @Summary Register a new entity
// @Description Adds a new organization to the registry (registrar operation)
// @Tags entities
// @Accept json
// @Produce json
// @Param entity body dto.CreateEntityRequest true "Entity details"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Registry code already exists"
// @Security BearerAuth
// @Router /entities [post]
func (h *entityHandler) createEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create entity", slog.String("registry_code", req.RegistryCode))
	entity, err := h.entityService.CreateEntity(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entity")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntityResponse(entity))
}

// listEntities godoc
// @Summary Search the registry
// @Description Filtered listing over name/registry code, legal form and registration date
// @Tags entities
// @Produce json
// @Param query query string false "Free-text term matched against name and registry code"
// @Param legalForm query string false "Legal form filter (LTD, PLC, NGO)"
// @Param registeredAfter query string false "Lower bound registration date (YYYY-MM-DD)"
// @Success 200 {array} dto.EntitySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Router /entities [get]
func (h *entityHandler) listEntities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEntitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entities, err := h.entityService.ListEntities(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entities")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntitiesResponse(entities))
}

// getEntity godoc
// @Summary Get one entity
// @Tags entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} ErrorResponse
// @Router /entities/{id} [get]
func (h *entityHandler) getEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entity, err := h.entityService.GetEntityByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get entity")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// updateEntity godoc
// @Summary Partially update an entity profile
// @Description Applies a shallow partial update; each provided field must be editable by the caller's role
// @Tags entities
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param update body dto.UpdateEntityRequest true "Fields to update"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id} [patch]
func (h *entityHandler) updateEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entity, err := h.entityService.UpdateEntityDetails(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entity")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// changeStatus godoc
// @Summary Change an entity's lifecycle status
// @Tags entities
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param status body dto.ChangeStatusRequest true "New status"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id}/status [post]
func (h *entityHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entity, err := h.entityService.ChangeStatus(c.Request.Context(), c.Param("id"), domain.EntityStatus(req.Status), actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to change status")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// checkName godoc
// @Summary Check name availability
// @Tags entities
// @Produce json
// @Param name query string true "Proposed entity name"
// @Success 200 {object} dto.NameCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /entities/name-check [get]
func (h *entityHandler) checkName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name query parameter is required"})
		return
	}

	available, err := h.entityService.CheckNameAvailability(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check name availability")
		return
	}
	c.JSON(http.StatusOK, dto.NameCheckResponse{Name: name, Available: available})
}

// listHistory godoc
// @Summary Get an entity's audit chain
// @Description Hash-linked log of state changes, newest first
// @Tags entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {array} dto.AuditLogEntryResponse
// @Failure 404 {object} ErrorResponse
// @Router /entities/{id}/history [get]
func (h *entityHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	history, err := h.auditService.ListHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list history")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponse(history))
}

// listReports godoc
// @Summary Get an entity's annual report filings
// @Tags entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {array} dto.ReportResponse
// @Failure 404 {object} ErrorResponse
// @Router /entities/{id}/reports [get]
func (h *entityHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reports, err := h.reportService.ListReports(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReportsResponse(reports))
}

// listTransactions godoc
// @Summary Get an entity's transaction ledger
// @Tags entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Router /entities/{id}/transactions [get]
func (h *entityHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.transactionService.ListTransactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}
