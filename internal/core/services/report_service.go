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
	"github.com/SaloneDigital/business_registry_app/internal/platform/metrics"
)

type reportService struct {
	entityRepo portsrepo.EntityRepositoryFacade
	audit      portssvc.AuditSvcFacade
	now        func() time.Time
}

// NewReportService creates the annual report lifecycle manager.
func NewReportService(entityRepo portsrepo.EntityRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.ReportSvcFacade {
	return &reportService{
		entityRepo: entityRepo,
		audit:      audit,
		now:        time.Now,
	}
}

// SubmitReport files the report for the given year. Re-filing is
// always allowed, even over an Approved or Rejected record: the prior
// record is replaced, never duplicated, and the status resets to
// Submitted.
func (s *reportService) SubmitReport(ctx context.Context, entityID string, req dto.SubmitReportRequest, actor domain.Actor) (*domain.AnnualReport, error) {
	if !actor.MayActOn(entityID) {
		return nil, fmt.Errorf("actor may not file reports for this entity: %w", apperrors.ErrForbidden)
	}
	if req.Revenue.IsNegative() {
		return nil, fmt.Errorf("revenue must not be negative: %w", apperrors.ErrValidation)
	}

	report := domain.AnnualReport{
		Year:              req.Year,
		Status:            domain.ReportSubmitted,
		Revenue:           req.Revenue,
		TransactionVolume: req.TransactionVolume,
		SubmissionDate:    s.now(),
		FiledBy:           actor.Name,
	}

	_, err := s.entityRepo.MutateEntity(ctx, entityID, func(e *domain.Entity) error {
		kept := e.Reports[:0]
		for _, r := range e.Reports {
			if r.Year != req.Year {
				kept = append(kept, r)
			}
		}
		e.Reports = append([]domain.AnnualReport{report}, kept...)

		detail := fmt.Sprintf("Report %d Submitted", req.Year)
		if req.PublishWebsite {
			e.IsWebsitePublished = true
			detail += " & Website Updated"
		}
		s.audit.Record(e, domain.ActionReportSubmitted, detail, actor.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit report: %w", err)
	}

	metrics.ReportsSubmitted.Inc()
	return &report, nil
}

// ReviewReport moves a Submitted report to Approved or Rejected. There
// is no automatic way back to Submitted; only a re-filing resets it.
func (s *reportService) ReviewReport(ctx context.Context, entityID string, year int, approve bool, actor domain.Actor) (*domain.AnnualReport, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("only the registrar may review reports: %w", apperrors.ErrForbidden)
	}

	var reviewed domain.AnnualReport
	_, err := s.entityRepo.MutateEntity(ctx, entityID, func(e *domain.Entity) error {
		report := e.ReportForYear(year)
		if report == nil {
			return fmt.Errorf("no report filed for %d: %w", year, apperrors.ErrInvalidTransition)
		}
		if report.Status != domain.ReportSubmitted {
			return fmt.Errorf("report for %d is %s, not %s: %w", year, report.Status, domain.ReportSubmitted, apperrors.ErrInvalidTransition)
		}

		action := domain.ActionReportApproved
		outcome := "Approved"
		report.Status = domain.ReportApproved
		if !approve {
			action = domain.ActionReportRejected
			outcome = "Rejected"
			report.Status = domain.ReportRejected
		}
		reviewed = *report
		s.audit.Record(e, action, fmt.Sprintf("Report %d %s", year, outcome), actor.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to review report: %w", err)
	}

	outcome := "approved"
	if !approve {
		outcome = "rejected"
	}
	metrics.ReportsReviewed.WithLabelValues(outcome).Inc()
	return &reviewed, nil
}

// ListReports is a pure read of the entity's filings, newest first.
func (s *reportService) ListReports(ctx context.Context, entityID string) ([]domain.AnnualReport, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return entity.Reports, nil
}
