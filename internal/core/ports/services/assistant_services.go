package services

import (
	"context"

	"github.com/SaloneDigital/business_registry_app/internal/dto"
)

// AssistantSvcFacade relays chat messages to an opaque language-model
// backend. It has no bearing on registry invariants; failures degrade
// to a canned reply rather than an error.
type AssistantSvcFacade interface {
	Chat(ctx context.Context, message string, history []dto.ChatMessage) (string, error)
}
