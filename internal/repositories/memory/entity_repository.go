// Package memory implements the repository ports over mutex-guarded
// in-memory state. The registry holds all data in process memory by
// design; this package is the authoritative store, not a cache.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SaloneDigital/business_registry_app/internal/apperrors"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
)

// EntityRepository is the in-memory registry store. A single RWMutex
// guards the whole map; MutateEntity is the write choke point, so the
// append-only and single-current-report invariants hold even with
// concurrent callers.
type EntityRepository struct {
	mu       sync.RWMutex
	entities map[string]*domain.Entity
	byCode   map[string]string // lowercased registry code -> entity ID
	order    []string          // entity IDs, newest-created first
}

// NewEntityRepository creates an empty registry store.
func NewEntityRepository() *EntityRepository {
	return &EntityRepository{
		entities: make(map[string]*domain.Entity),
		byCode:   make(map[string]string),
	}
}

// SaveEntity creates a new entity. The registry code must be unique
// case-insensitively; a duplicate create never mutates the store.
func (r *EntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	codeKey := strings.ToLower(entity.RegistryCode)
	if _, exists := r.byCode[codeKey]; exists {
		return fmt.Errorf("registry code %q: %w", entity.RegistryCode, apperrors.ErrDuplicate)
	}
	if _, exists := r.entities[entity.EntityID]; exists {
		return fmt.Errorf("entity ID %q: %w", entity.EntityID, apperrors.ErrDuplicate)
	}

	stored := cloneEntity(&entity)
	r.entities[entity.EntityID] = stored
	r.byCode[codeKey] = entity.EntityID
	r.order = append([]string{entity.EntityID}, r.order...)
	return nil
}

// FindEntityByID returns a copy of the entity or apperrors.ErrNotFound.
func (r *EntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.entities[entityID]
	if !ok {
		return nil, fmt.Errorf("entity %q: %w", entityID, apperrors.ErrNotFound)
	}
	return cloneEntity(stored), nil
}

// FindEntityByRegistryCode looks up by registry code, case-insensitively.
func (r *EntityRepository) FindEntityByRegistryCode(ctx context.Context, registryCode string) (*domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entityID, ok := r.byCode[strings.ToLower(strings.TrimSpace(registryCode))]
	if !ok {
		return nil, fmt.Errorf("registry code %q: %w", registryCode, apperrors.ErrNotFound)
	}
	return cloneEntity(r.entities[entityID]), nil
}

// ListEntities returns copies of all entities, newest-created first.
func (r *EntityRepository) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Entity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *cloneEntity(r.entities[id]))
	}
	return out, nil
}

// MutateEntity runs fn on a working copy of the entity under the write
// lock and commits the copy only when fn returns nil. EntityID and
// RegistryCode are immutable; fn must not change them.
func (r *EntityRepository) MutateEntity(ctx context.Context, entityID string, fn func(*domain.Entity) error) (*domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entities[entityID]
	if !ok {
		return nil, fmt.Errorf("entity %q: %w", entityID, apperrors.ErrNotFound)
	}

	working := cloneEntity(stored)
	if err := fn(working); err != nil {
		return nil, err
	}

	working.EntityID = stored.EntityID
	working.RegistryCode = stored.RegistryCode
	r.entities[entityID] = working
	return cloneEntity(working), nil
}

// cloneEntity deep-copies an entity so callers never alias store state.
func cloneEntity(e *domain.Entity) *domain.Entity {
	c := *e
	c.ManagementBoard = append([]domain.BoardMember(nil), e.ManagementBoard...)
	c.BeneficialOwners = append([]string(nil), e.BeneficialOwners...)
	c.Relationships = append([]domain.Relationship(nil), e.Relationships...)
	c.Reports = append([]domain.AnnualReport(nil), e.Reports...)
	c.Transactions = append([]domain.Transaction(nil), e.Transactions...)
	c.History = append([]domain.AuditLogEntry(nil), e.History...)
	return &c
}
