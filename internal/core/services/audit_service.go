package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portsrepo "github.com/SaloneDigital/business_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/platform/metrics"
	"github.com/google/uuid"
)

// SHA256Digest hashes (timestamp, action, details) with SHA-256. The
// resulting chain is tamper-evident on recomputation but is NOT a
// cryptographically verifiable ledger: there is no anchoring, no
// signatures and no proof-of-work. It renders the portal's audit trail,
// nothing more.
type SHA256Digest struct{}

// Digest returns 0x-prefixed hex of SHA-256 over the entry inputs.
func (SHA256Digest) Digest(timestamp time.Time, action domain.AuditAction, details string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", timestamp.UTC().Format(time.RFC3339Nano), action, details)))
	return "0x" + hex.EncodeToString(sum[:])
}

type auditService struct {
	entityRepo portsrepo.EntityRepositoryFacade
	digest     portssvc.DigestStrategy
	notifier   portssvc.Notifier
	now        func() time.Time
}

// NewAuditService creates the audit chain builder. notifier may be nil
// when no live feed is attached.
func NewAuditService(entityRepo portsrepo.EntityRepositoryFacade, digest portssvc.DigestStrategy, notifier portssvc.Notifier) portssvc.AuditSvcFacade {
	return &auditService{
		entityRepo: entityRepo,
		digest:     digest,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Record prepends a new entry to the entity's history. previousHash is
// the current head's hash, or the genesis sentinel for an empty chain.
func (s *auditService) Record(entity *domain.Entity, action domain.AuditAction, details, actor string) domain.AuditLogEntry {
	previousHash := domain.GenesisHash
	if len(entity.History) > 0 {
		previousHash = entity.History[0].Hash
	}

	timestamp := s.now()
	entry := domain.AuditLogEntry{
		EntryID:      uuid.NewString(),
		Timestamp:    timestamp,
		Action:       action,
		Details:      details,
		Actor:        actor,
		PreviousHash: previousHash,
		Hash:         s.digest.Digest(timestamp, action, details),
	}
	entity.History = append([]domain.AuditLogEntry{entry}, entity.History...)

	metrics.AuditEntries.Inc()
	if s.notifier != nil {
		s.notifier.PublishActivity(portssvc.ActivityEvent{
			EntityID:   entity.EntityID,
			EntityName: entity.Name,
			Action:     string(action),
			Details:    details,
			Actor:      actor,
			Hash:       entry.Hash,
			Timestamp:  timestamp,
		})
	}
	return entry
}

// VerifyChain recomputes every hash and checks every previousHash link
// walking head to genesis.
func (s *auditService) VerifyChain(history []domain.AuditLogEntry) error {
	for i := range history {
		entry := history[i]
		if recomputed := s.digest.Digest(entry.Timestamp, entry.Action, entry.Details); recomputed != entry.Hash {
			return fmt.Errorf("audit entry %s: stored hash %s does not match recomputed %s", entry.EntryID, entry.Hash, recomputed)
		}
		if i == len(history)-1 {
			if entry.PreviousHash != domain.GenesisHash {
				return fmt.Errorf("audit entry %s: oldest entry must link to genesis, got %s", entry.EntryID, entry.PreviousHash)
			}
			continue
		}
		if entry.PreviousHash != history[i+1].Hash {
			return fmt.Errorf("audit entry %s: previousHash %s does not match next entry hash %s", entry.EntryID, entry.PreviousHash, history[i+1].Hash)
		}
	}
	return nil
}

// ListHistory is a pure read of an entity's audit chain, newest first.
func (s *auditService) ListHistory(ctx context.Context, entityID string) ([]domain.AuditLogEntry, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entity.History, nil
}
