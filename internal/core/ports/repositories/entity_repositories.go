package repositories

import (
	"context"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
)

// EntityRepositoryFacade is the persistence port for the registry
// store. Implementations must treat registry codes as unique
// case-insensitively and must never reuse entity IDs.
type EntityRepositoryFacade interface {
	// SaveEntity creates a new entity. Returns apperrors.ErrDuplicate
	// if the registry code is already taken.
	SaveEntity(ctx context.Context, entity domain.Entity) error

	// FindEntityByID returns the entity or apperrors.ErrNotFound.
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// FindEntityByRegistryCode looks an entity up by its registry code,
	// matching case-insensitively. Returns apperrors.ErrNotFound if absent.
	FindEntityByRegistryCode(ctx context.Context, registryCode string) (*domain.Entity, error)

	// ListEntities returns all entities, newest-created first.
	ListEntities(ctx context.Context) ([]domain.Entity, error)

	// MutateEntity applies fn to the entity under the store's write
	// guard. fn runs on a working copy; the mutation is committed only
	// when fn returns nil, so a failed mutation leaves the store
	// untouched. This is the single choke point every entity mutation
	// flows through. Returns the committed entity.
	MutateEntity(ctx context.Context, entityID string, fn func(*domain.Entity) error) (*domain.Entity, error)
}

// UserRepositoryFacade is the persistence port for registrar accounts.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RepositoryProvider bundles all repository facades for injection into
// the service container.
type RepositoryProvider struct {
	EntityRepo EntityRepositoryFacade
	UserRepo   UserRepositoryFacade
}
