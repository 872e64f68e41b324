package services_test

import (
	"context"
	"sync"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// MockEntityRepository is a mock type for the EntityRepositoryFacade interface
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) FindEntityByRegistryCode(ctx context.Context, registryCode string) (*domain.Entity, error) {
	args := m.Called(ctx, registryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

// MutateEntity runs fn against the entity configured on the
// expectation, mirroring the store's commit-on-nil contract.
func (m *MockEntityRepository) MutateEntity(ctx context.Context, entityID string, fn func(*domain.Entity) error) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	entity := args.Get(0).(*domain.Entity)
	if err := fn(entity); err != nil {
		return nil, err
	}
	return entity, args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// capturingNotifier records published events for assertions.
type capturingNotifier struct {
	mu     sync.Mutex
	sms    []string
	events []portssvc.ActivityEvent
}

func (n *capturingNotifier) PublishSMS(phoneHint, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sms = append(n.sms, body)
}

func (n *capturingNotifier) PublishActivity(event portssvc.ActivityEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *capturingNotifier) lastSMS() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sms) == 0 {
		return ""
	}
	return n.sms[len(n.sms)-1]
}

// fixedCodeGenerator always yields the same one-time code.
type fixedCodeGenerator struct {
	code string
}

func (g fixedCodeGenerator) Generate() (string, error) {
	return g.code, nil
}
