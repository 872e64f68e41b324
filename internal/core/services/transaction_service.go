package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/apperrors"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portsrepo "github.com/SaloneDigital/business_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/google/uuid"
)

type transactionService struct {
	entityRepo portsrepo.EntityRepositoryFacade
	audit      portssvc.AuditSvcFacade
	now        func() time.Time
}

// NewTransactionService creates the append-only ledger service.
func NewTransactionService(entityRepo portsrepo.EntityRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		entityRepo: entityRepo,
		audit:      audit,
		now:        time.Now,
	}
}

// AddTransaction prepends one immutable ledger entry. Transactions are
// never edited or deleted afterwards.
func (s *transactionService) AddTransaction(ctx context.Context, entityID string, req dto.AddTransactionRequest, actor domain.Actor) (*domain.Transaction, error) {
	if !actor.MayActOn(entityID) {
		return nil, fmt.Errorf("actor may not record transactions for this entity: %w", apperrors.ErrForbidden)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}
	direction := domain.TransactionDirection(req.Direction)
	if !direction.IsValid() {
		return nil, fmt.Errorf("unknown transaction direction %q: %w", req.Direction, apperrors.ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = "General"
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          s.now(),
		Description:   req.Description,
		Amount:        req.Amount,
		Direction:     direction,
		Category:      category,
	}

	_, err := s.entityRepo.MutateEntity(ctx, entityID, func(e *domain.Entity) error {
		e.Transactions = append([]domain.Transaction{txn}, e.Transactions...)
		detail := fmt.Sprintf("%s transaction of %s recorded", direction, req.Amount.StringFixed(2))
		s.audit.Record(e, domain.ActionTransactionAdded, detail, actor.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add transaction: %w", err)
	}
	return &txn, nil
}

// ListTransactions is a pure read of the entity's ledger, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, entityID string) ([]domain.Transaction, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return entity.Transactions, nil
}
