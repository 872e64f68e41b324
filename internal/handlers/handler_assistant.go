package handlers

import (
	"net/http"

	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type assistantHandler struct {
	assistantService portssvc.AssistantSvcFacade
}

func newAssistantHandler(as portssvc.AssistantSvcFacade) *assistantHandler {
	return &assistantHandler{assistantService: as}
}

func registerAssistantRoutes(rg *gin.RouterGroup, as portssvc.AssistantSvcFacade) {
	h := newAssistantHandler(as)
	rg.POST("/assistant/chat", h.chat)
}

// chat godoc
// @Summary Ask the registry assistant
// @Description Relays a chat turn to the assistant backend; degrades to a canned reply when the backend is unreachable
// @Tags assistant
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Message and prior turns"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Router /assistant/chat [post]
func (h *assistantHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reply, err := h.assistantService.Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		respondServiceError(c, logger, err, "Assistant request failed")
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
