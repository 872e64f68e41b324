package dto

import (
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
)

// AuditLogEntryResponse mirrors one link of an entity's audit chain.
type AuditLogEntryResponse struct {
	EntryID      string    `json:"entryID"`
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	Details      string    `json:"details"`
	Actor        string    `json:"actor"`
	PreviousHash string    `json:"previousHash"`
	Hash         string    `json:"hash"`
}

// ToAuditLogResponse converts an audit chain, preserving newest-first order.
func ToAuditLogResponse(history []domain.AuditLogEntry) []AuditLogEntryResponse {
	out := make([]AuditLogEntryResponse, len(history))
	for i := range history {
		out[i] = AuditLogEntryResponse{
			EntryID:      history[i].EntryID,
			Timestamp:    history[i].Timestamp,
			Action:       string(history[i].Action),
			Details:      history[i].Details,
			Actor:        history[i].Actor,
			PreviousHash: history[i].PreviousHash,
			Hash:         history[i].Hash,
		}
	}
	return out
}
