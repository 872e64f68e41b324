package services

import (
	"context"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
)

// ReportSvcFacade governs the annual report lifecycle per (entity, year):
// Missing -> Submitted -> Approved | Rejected, with unrestricted re-filing.
type ReportSvcFacade interface {
	// SubmitReport files the report for req.Year, replacing any record
	// already present for that year and resetting its status to
	// Submitted. Setting req.PublishWebsite also publishes the entity's
	// generated website (the flag is never unset by this path).
	SubmitReport(ctx context.Context, entityID string, req dto.SubmitReportRequest, actor domain.Actor) (*domain.AnnualReport, error)

	// ReviewReport approves or rejects a report that is currently
	// Submitted. Fails with apperrors.ErrInvalidTransition when no
	// record exists for the year or the record is not Submitted; a
	// failed review appends no audit entry. Admin only.
	ReviewReport(ctx context.Context, entityID string, year int, approve bool, actor domain.Actor) (*domain.AnnualReport, error)

	// ListReports returns the entity's filings in stored order,
	// most recently filed first.
	ListReports(ctx context.Context, entityID string) ([]domain.AnnualReport, error)
}

// TransactionSvcFacade manages the append-only transaction ledger.
type TransactionSvcFacade interface {
	// AddTransaction appends one immutable ledger entry. The amount
	// must be strictly positive.
	AddTransaction(ctx context.Context, entityID string, req dto.AddTransactionRequest, actor domain.Actor) (*domain.Transaction, error)

	ListTransactions(ctx context.Context, entityID string) ([]domain.Transaction, error)
}
