package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/platform/config"
)

// assistantSystemInstruction frames the relay conversation for the
// backend model.
const assistantSystemInstruction = `You are "Salone BizBot", the official AI assistant for the Sierra Leone Electronic Business Register.
Your goal is to help users navigate the business registry, understand legal forms, and explain the annual report process.
Keep answers concise and helpful. Reply in the language the user writes in (English or Chinese).`

// assistantFallbackReply is returned whenever the backend is
// unreachable or unconfigured.
const assistantFallbackReply = "Sorry, connection error. Please try again later."

type assistantService struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *slog.Logger
}

// NewAssistantService creates the chat relay. The backend is treated
// as an opaque request/response function: unreachable or misbehaving
// backends degrade to a canned reply, never to a caller-visible error.
func NewAssistantService(cfg *config.Config, logger *slog.Logger) portssvc.AssistantSvcFacade {
	return &assistantService{
		endpoint: cfg.AssistantEndpoint,
		apiKey:   cfg.AssistantAPIKey,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

type assistantRequest struct {
	System  string            `json:"system"`
	Message string            `json:"message"`
	History []dto.ChatMessage `json:"history,omitempty"`
}

type assistantResponse struct {
	Reply string `json:"reply"`
}

func (s *assistantService) Chat(ctx context.Context, message string, history []dto.ChatMessage) (string, error) {
	if s.endpoint == "" {
		return assistantFallbackReply, nil
	}

	body, err := json.Marshal(assistantRequest{
		System:  assistantSystemInstruction,
		Message: message,
		History: history,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("assistant backend unreachable", slog.String("error", err.Error()))
		return assistantFallbackReply, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("assistant backend returned non-OK status", slog.Int("status", resp.StatusCode))
		return assistantFallbackReply, nil
	}

	var parsed assistantResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.logger.Warn("failed to decode assistant response", slog.String("error", err.Error()))
		return assistantFallbackReply, nil
	}
	if parsed.Reply == "" {
		return assistantFallbackReply, nil
	}
	return parsed.Reply, nil
}
