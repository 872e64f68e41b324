package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Seed loads the demonstration registry fixtures. Audit chain hashes
// are computed with the given digest strategy so the seeded chains
// verify the same way live ones do. Insertion order is oldest first,
// which makes ListEntities return the flagship company first.
func Seed(ctx context.Context, entities *EntityRepository, users *UserRepository, digest portssvc.DigestStrategy) error {
	for _, e := range seedEntities(digest) {
		if err := entities.SaveEntity(ctx, e); err != nil {
			return fmt.Errorf("failed to seed entity %s: %w", e.RegistryCode, err)
		}
	}
	return seedUsers(ctx, users)
}

// seedChain builds an audit chain from chronologically ordered entries,
// linking hashes and returning them newest first.
func seedChain(digest portssvc.DigestStrategy, entries []domain.AuditLogEntry) []domain.AuditLogEntry {
	prev := domain.GenesisHash
	for i := range entries {
		entries[i].EntryID = uuid.NewString()
		entries[i].PreviousHash = prev
		entries[i].Hash = digest.Digest(entries[i].Timestamp, entries[i].Action, entries[i].Details)
		prev = entries[i].Hash
	}
	reversed := make([]domain.AuditLogEntry, len(entries))
	for i := range entries {
		reversed[len(entries)-1-i] = entries[i]
	}
	return reversed
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func seedEntities(digest portssvc.DigestStrategy) []domain.Entity {
	return []domain.Entity{
		{
			EntityID:         "c3",
			RegistryCode:     "SL-2019-003311",
			Name:             "Bo Agricultural Co-op",
			LegalForm:        domain.LegalFormNGO,
			RegistrationDate: mustTime("2019-01-10T00:00:00Z"),
			Capital:          decimal.NewFromInt(25000),
			Address:          "5 Bo-Kenema Highway, Bo",
			Website:          "www.bo-agri.org",
			ContactEmail:     "contact@bo-agri.org",
			ContactPhone:     "+232 33 444 555",
			Status:           domain.StatusActive,
			ManagementBoard:  []domain.BoardMember{{Name: "Chief Kamara", Position: "Chairperson"}},
			BeneficialOwners: []string{"Community Trust"},
			TaxDebt:          decimal.Zero,
			Reports: []domain.AnnualReport{
				{
					Year:              2023,
					Status:            domain.ReportApproved,
					Revenue:           decimal.NewFromInt(450000),
					TransactionVolume: 120,
					SubmissionDate:    mustTime("2024-01-20T00:00:00Z"),
					FiledBy:           "Chief Kamara",
				},
			},
			History: seedChain(digest, []domain.AuditLogEntry{
				{Timestamp: mustTime("2019-01-10T08:30:00Z"), Action: domain.ActionRegistration, Details: "Company Registered", Actor: "Registrar"},
			}),
			IsWebsitePublished: true,
			CreatedAt:          mustTime("2019-01-10T08:30:00Z"),
		},
		{
			EntityID:         "c2",
			RegistryCode:     "SL-2021-008821",
			Name:             "Salone Tech Innovators",
			LegalForm:        domain.LegalFormPLC,
			RegistrationDate: mustTime("2021-06-20T00:00:00Z"),
			Capital:          decimal.NewFromInt(150000),
			Address:          "45 Siaka Stevens Street, Freetown",
			Website:          "www.salonetech.com",
			BusinessLogo:     "https://placehold.co/200x200/2563eb/ffffff?text=STI",
			ContactEmail:     "hello@salonetech.com",
			ContactPhone:     "+23232636816",
			Status:           domain.StatusActive,
			ManagementBoard:  []domain.BoardMember{{Name: "David Mansaray", Position: "Managing Director"}},
			BeneficialOwners: []string{"David Mansaray"},
			TaxDebt:          decimal.NewFromInt(5000),
			Relationships: []domain.Relationship{
				{Entity: "Freetown Hub", Type: "Partner"},
			},
			History: seedChain(digest, []domain.AuditLogEntry{
				{Timestamp: mustTime("2021-06-20T10:15:00Z"), Action: domain.ActionRegistration, Details: "Company Registered", Actor: "Registrar"},
			}),
			CreatedAt: mustTime("2021-06-20T10:15:00Z"),
		},
		{
			EntityID:         "c1",
			RegistryCode:     "SL-2023-001245",
			Name:             "Lion Mountains Mining Ltd",
			LegalForm:        domain.LegalFormLTD,
			RegistrationDate: mustTime("2020-03-15T00:00:00Z"),
			Capital:          decimal.NewFromInt(5000000),
			Address:          "12 Wilkinson Road, Freetown",
			Website:          "www.lionmines.sl",
			BusinessLogo:     "https://placehold.co/200x200/1e3a8a/ffffff?text=LMM",
			ContactEmail:     "info@lionmines.sl",
			ContactPhone:     "+23278 875269",
			Status:           domain.StatusActive,
			ManagementBoard: []domain.BoardMember{
				{Name: "Amara Bangura", Position: "Chairperson"},
				{Name: "Sarah Cole", Position: "Managing Director"},
			},
			BeneficialOwners:  []string{"Global Mining Corp", "Ibrahim Bah"},
			TaxDebt:           decimal.Zero,
			CommercialPledges: 2,
			Relationships: []domain.Relationship{
				{Entity: "Global Mining Corp", Type: "Parent"},
				{Entity: "Lion Transport Services", Type: "Subsidiary"},
			},
			Reports: []domain.AnnualReport{
				{
					Year:              2023,
					Status:            domain.ReportApproved,
					Revenue:           decimal.NewFromInt(12000000),
					TransactionVolume: 4500,
					SubmissionDate:    mustTime("2024-02-10T00:00:00Z"),
					FiledBy:           "Sarah Cole",
				},
				{
					Year:              2022,
					Status:            domain.ReportApproved,
					Revenue:           decimal.NewFromInt(9500000),
					TransactionVolume: 3200,
					SubmissionDate:    mustTime("2023-03-01T00:00:00Z"),
					FiledBy:           "Sarah Cole",
				},
			},
			Transactions: []domain.Transaction{
				{
					TransactionID: "t2",
					Date:          mustTime("2024-03-05T00:00:00Z"),
					Description:   "Logistics Payment",
					Amount:        decimal.NewFromInt(12000),
					Direction:     domain.DirectionDebit,
					Category:      "Operations",
				},
				{
					TransactionID: "t1",
					Date:          mustTime("2024-03-01T00:00:00Z"),
					Description:   "Equipment Export",
					Amount:        decimal.NewFromInt(45000),
					Direction:     domain.DirectionCredit,
					Category:      "Sales",
				},
			},
			History: seedChain(digest, []domain.AuditLogEntry{
				{Timestamp: mustTime("2020-03-15T09:00:00Z"), Action: domain.ActionRegistration, Details: "Company Registered", Actor: "Registrar"},
				{Timestamp: mustTime("2024-02-10T14:30:00Z"), Action: domain.ActionReportSubmitted, Details: "Annual Report 2023 submitted", Actor: "User: S.Cole"},
			}),
			IsWebsitePublished: true,
			CreatedAt:          mustTime("2020-03-15T09:00:00Z"),
		},
	}
}

// seedUsers creates the demonstration registrar accounts. These are
// fixture credentials for the mock portal, not real identities.
func seedUsers(ctx context.Context, users *UserRepository) error {
	accounts := []struct {
		username, name, password string
		role                     domain.Role
	}{
		{"registrar", "Registrar Admin", "registrar-demo", domain.RoleAdmin},
		{"abangura", "Amara Bangura", "portal-demo", domain.RoleUser},
	}
	for _, a := range accounts {
		hash, err := utils.HashPassword(a.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", a.username, err)
		}
		user := domain.User{
			UserID:       uuid.NewString(),
			Username:     a.username,
			Name:         a.name,
			Role:         a.role,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		if err := users.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", a.username, err)
		}
	}
	return nil
}
