package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/apperrors"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portsrepo "github.com/SaloneDigital/business_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type entityService struct {
	entityRepo portsrepo.EntityRepositoryFacade
	audit      portssvc.AuditSvcFacade
	now        func() time.Time
}

// NewEntityService creates the registry store service. Every mutation
// it performs goes through the repository's MutateEntity choke point
// and records an audit entry inside it.
func NewEntityService(entityRepo portsrepo.EntityRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.EntitySvcFacade {
	return &entityService{
		entityRepo: entityRepo,
		audit:      audit,
		now:        time.Now,
	}
}

func (s *entityService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, actor domain.Actor) (*domain.Entity, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("only the registrar may create entities: %w", apperrors.ErrForbidden)
	}
	legalForm := domain.LegalForm(req.LegalForm)
	if !legalForm.IsValid() {
		return nil, fmt.Errorf("unknown legal form %q: %w", req.LegalForm, apperrors.ErrValidation)
	}

	now := s.now()
	entity := domain.Entity{
		EntityID:         uuid.NewString(),
		RegistryCode:     strings.TrimSpace(req.RegistryCode),
		Name:             strings.TrimSpace(req.Name),
		LegalForm:        legalForm,
		RegistrationDate: now,
		Capital:          decimal.Zero,
		Address:          "Pending",
		Status:           domain.StatusActive,
		TaxDebt:          decimal.Zero,
		CreatedAt:        now,
	}
	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}

	// The genesis entry is recorded only after the entity is in the
	// store; a rejected create publishes nothing.
	created, err := s.entityRepo.MutateEntity(ctx, entity.EntityID, func(e *domain.Entity) error {
		s.audit.Record(e, domain.ActionRegistration, "Company Registered", actor.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record registration: %w", err)
	}
	metrics.EntitiesCreated.Inc()
	return created, nil
}

func (s *entityService) GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return entity, nil
}

// ListEntities applies the search filter as a pure predicate over the
// store: free-text term against name and registry code, legal form
// equality, registration date lower bound.
func (s *entityService) ListEntities(ctx context.Context, params dto.ListEntitiesParams) ([]domain.Entity, error) {
	entities, err := s.entityRepo.ListEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(params.Query))
	var registeredAfter time.Time
	if params.RegisteredAfter != "" {
		registeredAfter, err = time.Parse("2006-01-02", params.RegisteredAfter)
		if err != nil {
			return nil, fmt.Errorf("invalid registeredAfter date: %w", apperrors.ErrValidation)
		}
	}

	filtered := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Name), term) &&
			!strings.Contains(strings.ToLower(e.RegistryCode), term) {
			continue
		}
		if params.LegalForm != "" && e.LegalForm != domain.LegalForm(params.LegalForm) {
			continue
		}
		if !registeredAfter.IsZero() && e.RegistrationDate.Before(registeredAfter) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func (s *entityService) UpdateEntityDetails(ctx context.Context, entityID string, req dto.UpdateEntityRequest, actor domain.Actor) (*domain.Entity, error) {
	if !actor.MayActOn(entityID) {
		return nil, fmt.Errorf("actor may not edit this entity: %w", apperrors.ErrForbidden)
	}
	fields := req.ProvidedFields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields provided: %w", apperrors.ErrValidation)
	}
	for _, field := range fields {
		if !domain.CanEditField(actor.Role, field) {
			return nil, fmt.Errorf("role %s may not edit field %s: %w", actor.Role, field, apperrors.ErrForbidden)
		}
	}

	updated, err := s.entityRepo.MutateEntity(ctx, entityID, func(e *domain.Entity) error {
		applyUpdate(e, req)
		detail := fmt.Sprintf("Fields updated: %s", joinFields(fields))
		s.audit.Record(e, domain.ActionUpdateDetails, detail, actor.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}
	return updated, nil
}

func (s *entityService) ChangeStatus(ctx context.Context, entityID string, status domain.EntityStatus, actor domain.Actor) (*domain.Entity, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("only the registrar may change entity status: %w", apperrors.ErrForbidden)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q: %w", status, apperrors.ErrValidation)
	}

	updated, err := s.entityRepo.MutateEntity(ctx, entityID, func(e *domain.Entity) error {
		e.Status = status
		s.audit.Record(e, domain.ActionStatusChange, fmt.Sprintf("Status changed to %s", status), actor.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to change status: %w", err)
	}
	return updated, nil
}

func (s *entityService) CheckNameAvailability(ctx context.Context, name string) (bool, error) {
	entities, err := s.entityRepo.ListEntities(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check name availability: %w", err)
	}
	wanted := strings.ToLower(strings.TrimSpace(name))
	for _, e := range entities {
		if strings.ToLower(e.Name) == wanted {
			return false, nil
		}
	}
	return true, nil
}

func (s *entityService) DashboardSummary(ctx context.Context) (dto.DashboardSummaryResponse, error) {
	entities, err := s.entityRepo.ListEntities(ctx)
	if err != nil {
		return dto.DashboardSummaryResponse{}, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	summary := dto.DashboardSummaryResponse{TotalEntities: len(entities)}
	for _, e := range entities {
		if e.Status == domain.StatusActive {
			summary.ActiveEntities++
		}
		if e.IsWebsitePublished {
			summary.PublishedWebsites++
		}
		for _, r := range e.Reports {
			switch r.Status {
			case domain.ReportSubmitted:
				summary.PendingReports++
			case domain.ReportApproved:
				summary.ApprovedReports++
			}
		}
	}
	return summary, nil
}

// applyUpdate shallow-merges the provided fields; collections are
// replaced wholesale only when explicitly included.
func applyUpdate(e *domain.Entity, req dto.UpdateEntityRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.LegalForm != nil {
		e.LegalForm = domain.LegalForm(*req.LegalForm)
	}
	if req.RegistrationDate != nil {
		e.RegistrationDate = *req.RegistrationDate
	}
	if req.Capital != nil {
		e.Capital = *req.Capital
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.Website != nil {
		e.Website = *req.Website
	}
	if req.BusinessLogo != nil {
		e.BusinessLogo = *req.BusinessLogo
	}
	if req.ContactEmail != nil {
		e.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		e.ContactPhone = *req.ContactPhone
	}
	if req.ManagementBoard != nil {
		e.ManagementBoard = *req.ManagementBoard
	}
	if req.BeneficialOwners != nil {
		e.BeneficialOwners = *req.BeneficialOwners
	}
	if req.TaxDebt != nil {
		e.TaxDebt = *req.TaxDebt
	}
	if req.CommercialPledges != nil {
		e.CommercialPledges = *req.CommercialPledges
	}
	if req.Relationships != nil {
		e.Relationships = *req.Relationships
	}
}

func joinFields(fields []domain.ProfileField) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
