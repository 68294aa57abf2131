package services

import (
	"context"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/ledgerlift/ledgerlift/internal/dto"
)

// TrialBalanceSvcFacade aggregates coded transactions into per-account rows
// and validates the double-entry invariant. The trial balance is a derived
// view, recomputed on demand; nothing here persists report state.
type TrialBalanceSvcFacade interface {
	// GetTrialBalance computes the structured trial balance for a user.
	GetTrialBalance(ctx context.Context, userID string, opts dto.TrialBalanceOptions) (*domain.TrialBalance, error)

	// GetTrialBalanceTotals computes only the debit/credit totals and the
	// balance check.
	GetTrialBalanceTotals(ctx context.Context, userID string) (*domain.TrialBalanceTotals, error)

	// ValidateForCommit checks balance and coding completeness. An
	// unbalanced ledger is a reported condition, not an error return.
	ValidateForCommit(ctx context.Context, userID string) (*domain.CommitValidation, error)

	// ExportToCSV flattens a trial balance into row-oriented CSV
	// (section, category, accounts, totals). Pure and stateless.
	ExportToCSV(tb *domain.TrialBalance) ([]byte, error)
}
