package services

import (
	"log/slog"

	portsrepo "github.com/SaloneDigital/business_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/platform/config"
)

// NewServiceContainer creates a service container with properly
// initialized dependencies. notifier may be nil in tests.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The audit service is created first: every mutating service
	// records through it.
	container.Audit = NewAuditService(repos.EntityRepo, SHA256Digest{}, notifier)

	container.Entity = NewEntityService(repos.EntityRepo, container.Audit)
	container.Report = NewReportService(repos.EntityRepo, container.Audit)
	container.Transaction = NewTransactionService(repos.EntityRepo, container.Audit)
	container.Auth = NewAuthService(repos.EntityRepo, repos.UserRepo, CryptoCodeGenerator{}, notifier, cfg)
	container.Assistant = NewAssistantService(cfg, logger)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.EntitySvcFacade      = (*entityService)(nil)
	_ portssvc.ReportSvcFacade      = (*reportService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.AuditSvcFacade       = (*auditService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
	_ portssvc.AssistantSvcFacade   = (*assistantService)(nil)
	_ portssvc.DigestStrategy       = SHA256Digest{}
	_ portssvc.CodeGenerator        = CryptoCodeGenerator{}
)
