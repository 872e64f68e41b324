package dto

import (
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntityRequest defines the data needed to register a new entity.
type CreateEntityRequest struct {
	Name         string `json:"name" binding:"required"`
	LegalForm    string `json:"legalForm" binding:"required,legalform"`
	RegistryCode string `json:"registryCode" binding:"required"`
}

// UpdateEntityRequest defines the data allowed for a partial profile
// update. Pointers distinguish omitted fields from zero values; which
// of the provided fields are actually applied depends on the caller's
// role (see domain.CanEditField).
type UpdateEntityRequest struct {
	Name              *string                `json:"name"`
	LegalForm         *string                `json:"legalForm" binding:"omitempty,legalform"`
	RegistrationDate  *time.Time             `json:"registrationDate"`
	Capital           *decimal.Decimal       `json:"capital"`
	Address           *string                `json:"address"`
	Website           *string                `json:"website"`
	BusinessLogo      *string                `json:"businessLogo"`
	ContactEmail      *string                `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone      *string                `json:"contactPhone"`
	ManagementBoard   *[]domain.BoardMember  `json:"managementBoard"`
	BeneficialOwners  *[]string              `json:"beneficialOwners"`
	TaxDebt           *decimal.Decimal       `json:"taxDebt"`
	CommercialPledges *int                   `json:"commercialPledges"`
	Relationships     *[]domain.Relationship `json:"relationships"`
}

// ProvidedFields lists which profile fields the request carries, for
// permission checking before any of them is applied.
func (r UpdateEntityRequest) ProvidedFields() []domain.ProfileField {
	var fields []domain.ProfileField
	if r.Name != nil {
		fields = append(fields, domain.FieldName)
	}
	if r.LegalForm != nil {
		fields = append(fields, domain.FieldLegalForm)
	}
	if r.RegistrationDate != nil {
		fields = append(fields, domain.FieldRegistrationDate)
	}
	if r.Capital != nil {
		fields = append(fields, domain.FieldCapital)
	}
	if r.Address != nil {
		fields = append(fields, domain.FieldAddress)
	}
	if r.Website != nil {
		fields = append(fields, domain.FieldWebsite)
	}
	if r.BusinessLogo != nil {
		fields = append(fields, domain.FieldBusinessLogo)
	}
	if r.ContactEmail != nil {
		fields = append(fields, domain.FieldContactEmail)
	}
	if r.ContactPhone != nil {
		fields = append(fields, domain.FieldContactPhone)
	}
	if r.ManagementBoard != nil {
		fields = append(fields, domain.FieldManagementBoard)
	}
	if r.BeneficialOwners != nil {
		fields = append(fields, domain.FieldBeneficialOwners)
	}
	if r.TaxDebt != nil {
		fields = append(fields, domain.FieldTaxDebt)
	}
	if r.CommercialPledges != nil {
		fields = append(fields, domain.FieldCommercialPledges)
	}
	if r.Relationships != nil {
		fields = append(fields, domain.FieldRelationships)
	}
	return fields
}

// ChangeStatusRequest moves an entity to a new lifecycle status.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive Liquidated Bankruptcy"`
}

// ListEntitiesParams defines the query parameters for filtered listing.
type ListEntitiesParams struct {
	Query           string `form:"query"`
	LegalForm       string `form:"legalForm" binding:"omitempty,legalform"`
	RegisteredAfter string `form:"registeredAfter" binding:"omitempty,datetime=2006-01-02"`
}

// EntitySummaryResponse is the listing projection of an entity.
type EntitySummaryResponse struct {
	EntityID           string          `json:"entityID"`
	RegistryCode       string          `json:"registryCode"`
	Name               string          `json:"name"`
	LegalForm          string          `json:"legalForm"`
	RegistrationDate   time.Time       `json:"registrationDate"`
	Capital            decimal.Decimal `json:"capital"`
	Status             string          `json:"status"`
	IsWebsitePublished bool            `json:"isWebsitePublished"`
}

// EntityResponse is the full detail projection of an entity.
type EntityResponse struct {
	EntitySummaryResponse
	Address           string                `json:"address"`
	Website           string                `json:"website"`
	BusinessLogo      string                `json:"businessLogo"`
	ContactEmail      string                `json:"contactEmail"`
	ContactPhone      string                `json:"contactPhone"`
	ManagementBoard   []domain.BoardMember  `json:"managementBoard"`
	BeneficialOwners  []string              `json:"beneficialOwners"`
	TaxDebt           decimal.Decimal       `json:"taxDebt"`
	GoodTaxStanding   bool                  `json:"goodTaxStanding"`
	CommercialPledges int                   `json:"commercialPledges"`
	Relationships     []domain.Relationship `json:"relationships"`
	Reports           []ReportResponse      `json:"reports"`
}

// NameCheckResponse answers a name availability query.
type NameCheckResponse struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// DashboardSummaryResponse carries the admin dashboard tiles.
type DashboardSummaryResponse struct {
	TotalEntities     int `json:"totalEntities"`
	ActiveEntities    int `json:"activeEntities"`
	PendingReports    int `json:"pendingReports"`
	ApprovedReports   int `json:"approvedReports"`
	PublishedWebsites int `json:"publishedWebsites"`
}

// ToEntitySummaryResponse converts a domain entity to its listing projection.
func ToEntitySummaryResponse(e *domain.Entity) EntitySummaryResponse {
	return EntitySummaryResponse{
		EntityID:           e.EntityID,
		RegistryCode:       e.RegistryCode,
		Name:               e.Name,
		LegalForm:          string(e.LegalForm),
		RegistrationDate:   e.RegistrationDate,
		Capital:            e.Capital,
		Status:             string(e.Status),
		IsWebsitePublished: e.IsWebsitePublished,
	}
}

// ToEntityResponse converts a domain entity to its detail projection.
func ToEntityResponse(e *domain.Entity) EntityResponse {
	reports := make([]ReportResponse, len(e.Reports))
	for i := range e.Reports {
		reports[i] = ToReportResponse(&e.Reports[i])
	}
	return EntityResponse{
		EntitySummaryResponse: ToEntitySummaryResponse(e),
		Address:               e.Address,
		Website:               e.Website,
		BusinessLogo:          e.BusinessLogo,
		ContactEmail:          e.ContactEmail,
		ContactPhone:          e.ContactPhone,
		ManagementBoard:       e.ManagementBoard,
		BeneficialOwners:      e.BeneficialOwners,
		TaxDebt:               e.TaxDebt,
		GoodTaxStanding:       e.HasGoodTaxStanding(),
		CommercialPledges:     e.CommercialPledges,
		Relationships:         e.Relationships,
		Reports:               reports,
	}
}

// ToListEntitiesResponse converts a slice of domain entities.
func ToListEntitiesResponse(entities []domain.Entity) []EntitySummaryResponse {
	out := make([]EntitySummaryResponse, len(entities))
	for i := range entities {
		out[i] = ToEntitySummaryResponse(&entities[i])
	}
	return out
}
