package services

import (
	"github.com/ledgerlift/ledgerlift/internal/chart"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
	portssvc "github.com/ledgerlift/ledgerlift/internal/core/ports/services"
	"github.com/ledgerlift/ledgerlift/internal/platform/config"
)

// NewServiceContainer wires every service against the chart of accounts and
// the repository provider.
func NewServiceContainer(cfg *config.Config, coa *chart.Chart, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	coding := NewCodingService(coa, repos.TransactionRepo)
	statement := NewStatementService(coding, repos.TransactionRepo, repos.UploadRepo,
		WithParseTimeout(cfg.ParseTimeout),
		WithDefaultCurrency(cfg.DefaultCurrency),
	)
	trialBalance := NewTrialBalanceService(coa, repos.TransactionRepo)

	return &portssvc.ServiceContainer{
		Statement:    statement,
		Coding:       coding,
		TrialBalance: trialBalance,
	}
}
