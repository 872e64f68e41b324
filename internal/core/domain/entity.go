package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LegalForm is the closed set of organizational types the registry accepts.
type LegalForm string

const (
	LegalFormLTD LegalForm = "LTD"
	LegalFormPLC LegalForm = "PLC"
	LegalFormNGO LegalForm = "NGO"
)

// IsValid reports whether lf is one of the registered legal forms.
func (lf LegalForm) IsValid() bool {
	switch lf {
	case LegalFormLTD, LegalFormPLC, LegalFormNGO:
		return true
	}
	return false
}

// EntityStatus is the lifecycle status of a registered entity.
// Entities are never deleted, only moved between statuses.
type EntityStatus string

const (
	StatusActive     EntityStatus = "Active"
	StatusInactive   EntityStatus = "Inactive"
	StatusLiquidated EntityStatus = "Liquidated"
	StatusBankruptcy EntityStatus = "Bankruptcy"
)

// IsValid reports whether s is a known entity status.
func (s EntityStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusLiquidated, StatusBankruptcy:
		return true
	}
	return false
}

// BoardMember is one entry of the ordered management roster.
type BoardMember struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Relationship links an entity to a named counterpart (parent,
// subsidiary, partner and so on).
type Relationship struct {
	Entity string `json:"entity"`
	Type   string `json:"type"`
}

// Entity represents a registered organization in the domain.
//
// EntityID and RegistryCode are immutable after creation; RegistryCode
// is unique across the registry (case-insensitive). The entity
// exclusively owns its Reports, Transactions and History collections.
type Entity struct {
	EntityID         string          `json:"entityID"`
	RegistryCode     string          `json:"registryCode"`
	Name             string          `json:"name"`
	LegalForm        LegalForm       `json:"legalForm"`
	RegistrationDate time.Time       `json:"registrationDate"`
	Capital          decimal.Decimal `json:"capital"`
	Address          string          `json:"address"`
	Website          string          `json:"website"`
	BusinessLogo     string          `json:"businessLogo"`
	ContactEmail     string          `json:"contactEmail"`
	ContactPhone     string          `json:"contactPhone"`
	Status           EntityStatus    `json:"status"`
	ManagementBoard  []BoardMember   `json:"managementBoard"`
	BeneficialOwners []string        `json:"beneficialOwners"`

	// Administrative standing. A zero TaxDebt means good standing.
	TaxDebt           decimal.Decimal `json:"taxDebt"`
	CommercialPledges int             `json:"commercialPledges"`
	Relationships     []Relationship  `json:"relationships"`

	// Reports holds at most one current record per fiscal year.
	Reports []AnnualReport `json:"reports"`
	// Transactions is an append-only ledger, newest first.
	Transactions []Transaction `json:"transactions"`
	// History is the audit chain, newest first (History[0] is the head).
	History []AuditLogEntry `json:"history"`

	IsWebsitePublished bool      `json:"isWebsitePublished"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ReportForYear returns the current report record for the given year,
// or nil if the report is implicitly Missing.
func (e *Entity) ReportForYear(year int) *AnnualReport {
	for i := range e.Reports {
		if e.Reports[i].Year == year {
			return &e.Reports[i]
		}
	}
	return nil
}

// HasGoodTaxStanding reports whether the entity owes no tax debt.
func (e *Entity) HasGoodTaxStanding() bool {
	return e.TaxDebt.IsZero()
}
