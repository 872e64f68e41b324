package services

import (
	"context"
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
)

// DigestStrategy computes the hash stored on an audit entry. The
// default implementation is SHA-256 over the entry's inputs; it exists
// as a named strategy so a different digest can be substituted without
// touching the chain-building contract.
type DigestStrategy interface {
	Digest(timestamp time.Time, action domain.AuditAction, details string) string
}

// AuditSvcFacade builds and reads per-entity audit chains. The chain
// is tamper-evident on recomputation only; it carries no proof-of-work
// or external anchoring and must not be presented as a verifiable
// ledger.
type AuditSvcFacade interface {
	// Record prepends a new entry to the entity's history, linking it
	// to the previous head (or the genesis sentinel on an empty chain).
	// It mutates the entity in place and is meant to be called inside
	// the store's mutation choke point.
	Record(entity *domain.Entity, action domain.AuditAction, details, actor string) domain.AuditLogEntry

	// VerifyChain walks a history head-to-genesis, recomputing each
	// hash and checking every previousHash link. Returns nil for an
	// intact chain.
	VerifyChain(history []domain.AuditLogEntry) error

	// ListHistory returns an entity's audit chain, newest first.
	ListHistory(ctx context.Context, entityID string) ([]domain.AuditLogEntry, error)
}
