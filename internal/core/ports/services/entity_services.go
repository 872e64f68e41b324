package services

import (
	"context"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
)

// EntitySvcFacade exposes registry store operations plus the read-only
// query engine over it.
type EntitySvcFacade interface {
	// CreateEntity registers a new entity with an empty profile and a
	// genesis REGISTRATION audit entry. Admin only.
	CreateEntity(ctx context.Context, req dto.CreateEntityRequest, actor domain.Actor) (*domain.Entity, error)

	GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// ListEntities evaluates the search filter as a pure read; it never
	// mutates entities or their audit chains.
	ListEntities(ctx context.Context, params dto.ListEntitiesParams) ([]domain.Entity, error)

	// UpdateEntityDetails applies a shallow partial update. Every field
	// carried by the request must be editable by the actor's role or
	// the whole update fails with apperrors.ErrForbidden.
	UpdateEntityDetails(ctx context.Context, entityID string, req dto.UpdateEntityRequest, actor domain.Actor) (*domain.Entity, error)

	// ChangeStatus moves the entity to a new lifecycle status. Admin only.
	ChangeStatus(ctx context.Context, entityID string, status domain.EntityStatus, actor domain.Actor) (*domain.Entity, error)

	// CheckNameAvailability reports whether no entity already carries
	// the given name (case-insensitive exact match).
	CheckNameAvailability(ctx context.Context, name string) (bool, error)

	// DashboardSummary aggregates registry-wide counters for the admin
	// dashboard tiles.
	DashboardSummary(ctx context.Context) (dto.DashboardSummaryResponse, error)
}
