package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SaloneDigital/business_registry_app/internal/apperrors"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
)

// UserRepository is the in-memory store for registrar accounts.
type UserRepository struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	byUsername map[string]string // lowercased username -> user ID
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]domain.User),
		byUsername: make(map[string]string),
	}
}

// SaveUser creates a new user. Usernames are unique case-insensitively.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nameKey := strings.ToLower(user.Username)
	if _, exists := r.byUsername[nameKey]; exists {
		return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrDuplicate)
	}
	r.users[user.UserID] = user
	r.byUsername[nameKey] = user.UserID
	return nil
}

// FindUserByID returns the user or apperrors.ErrNotFound.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}
	return &user, nil
}

// FindUserByUsername looks up by username, case-insensitively.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrNotFound)
	}
	user := r.users[userID]
	return &user, nil
}
