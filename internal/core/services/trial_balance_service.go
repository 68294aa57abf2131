package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ledgerlift/ledgerlift/internal/chart"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
	portssvc "github.com/ledgerlift/ledgerlift/internal/core/ports/services"
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/ledgerlift/ledgerlift/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// trialBalanceService aggregates coded transactions into the trial balance
// view. Reports are recomputed from the transaction store on every call;
// nothing here holds report state.
type trialBalanceService struct {
	BaseService
	chart   *chart.Chart
	txnRepo portsrepo.TransactionReader
}

// NewTrialBalanceService creates a new trial balance service
func NewTrialBalanceService(coa *chart.Chart, txnRepo portsrepo.TransactionReader) portssvc.TrialBalanceSvcFacade {
	return &trialBalanceService{
		chart:   coa,
		txnRepo: txnRepo,
	}
}

// Ensure trialBalanceService implements the TrialBalanceSvcFacade interface
var _ portssvc.TrialBalanceSvcFacade = (*trialBalanceService)(nil)

// GetTrialBalance computes the per-account trial balance for a user. Uncoded
// transactions are excluded; zero-balance rows are dropped unless requested.
func (s *trialBalanceService) GetTrialBalance(ctx context.Context, userID string, opts dto.TrialBalanceOptions) (*domain.TrialBalance, error) {
	transactions, err := s.txnRepo.ListTransactionsByUser(ctx, userID, opts.DateFrom, opts.DateTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for trial balance",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	rows, err := s.aggregate(ctx, transactions)
	if err != nil {
		return nil, err
	}

	if !opts.IncludeZeroBalances {
		filtered := rows[:0]
		for _, row := range rows {
			if !row.NetBalance.IsZero() {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	tb := &domain.TrialBalance{
		Rows:   rows,
		Totals: computeTotals(rows),
	}

	s.LogInfo(ctx, "Trial balance computed",
		slog.String("user_id", userID),
		slog.Int("row_count", len(rows)),
		slog.Bool("balanced", tb.Totals.IsBalanced))
	return tb, nil
}

// GetTrialBalanceTotals computes only the totals and the balance check.
func (s *trialBalanceService) GetTrialBalanceTotals(ctx context.Context, userID string) (*domain.TrialBalanceTotals, error) {
	tb, err := s.GetTrialBalance(ctx, userID, dto.TrialBalanceOptions{})
	if err != nil {
		return nil, err
	}
	return &tb.Totals, nil
}

// ValidateForCommit checks whether the user's ledger is ready to commit: all
// transactions coded and debits equal to credits within tolerance. Failures
// are reported inside the result, never as an error return.
func (s *trialBalanceService) ValidateForCommit(ctx context.Context, userID string) (*domain.CommitValidation, error) {
	transactions, err := s.txnRepo.ListTransactionsByUser(ctx, userID, "", "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for commit validation",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	v := &domain.CommitValidation{TransactionCount: len(transactions)}
	for _, txn := range transactions {
		if !txn.IsCoded() {
			v.UncodedCount++
		}
	}

	rows, err := s.aggregate(ctx, transactions)
	if err != nil {
		return nil, err
	}
	totals := computeTotals(rows)
	v.IsBalanced = totals.IsBalanced

	if len(transactions) == 0 {
		v.Errors = append(v.Errors, "no transactions to commit")
	}
	if v.UncodedCount > 0 {
		v.Errors = append(v.Errors, fmt.Sprintf("%d transactions are not coded", v.UncodedCount))
	}
	if !v.IsBalanced {
		v.Errors = append(v.Errors, fmt.Sprintf("ledger is out of balance by %s", totals.Difference.Abs().StringFixed(2)))
	}
	for _, row := range rows {
		if row.NetBalance.IsZero() && row.TransactionCount > 0 {
			v.Warnings = append(v.Warnings, fmt.Sprintf("account %s (%s) nets to zero", row.Code, row.Name))
		}
	}

	v.ReadyForCommit = len(v.Errors) == 0

	s.LogInfo(ctx, "Commit validation finished",
		slog.String("user_id", userID),
		slog.Bool("ready", v.ReadyForCommit),
		slog.Int("uncoded", v.UncodedCount),
		slog.Bool("balanced", v.IsBalanced))
	return v, nil
}

// ExportToCSV flattens a trial balance into CSV. The output round-trips
// through encoding/csv: the first row is the header, then one row per
// account, then a TOTALS row.
func (s *trialBalanceService) ExportToCSV(tb *domain.TrialBalance) ([]byte, error) {
	if tb == nil {
		return nil, fmt.Errorf("nil trial balance")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Section", "Category", "Subcategory", "Code", "Name", "Type", "Debit", "Credit", "Net Balance"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range tb.Rows {
		record := []string{
			row.Section,
			row.Category,
			row.Subcategory,
			row.Code,
			row.Name,
			string(row.Type),
			row.DebitAmount.StringFixed(2),
			row.CreditAmount.StringFixed(2),
			row.NetBalance.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for account %s: %w", row.Code, err)
		}
	}

	totals := []string{
		"", "", "", "", "TOTALS", "",
		tb.Totals.TotalDebits.StringFixed(2),
		tb.Totals.TotalCredits.StringFixed(2),
		tb.Totals.Difference.StringFixed(2),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("failed to write CSV totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// aggregate folds coded transactions into per-account rows sorted by code.
// Transactions coded to an account missing from the chart are skipped with a
// warning; they indicate a chart change after coding.
func (s *trialBalanceService) aggregate(ctx context.Context, transactions []domain.Transaction) ([]domain.TrialBalanceRow, error) {
	byCode := make(map[string]*domain.TrialBalanceRow)
	for _, txn := range transactions {
		if !txn.IsCoded() {
			continue
		}
		acc, err := s.chart.Get(txn.AccountCode)
		if err != nil {
			s.LogWarn(ctx, "Transaction coded to unknown account, skipping",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("account_code", txn.AccountCode))
			continue
		}

		debit, credit, err := accounting.DebitCredit(txn, acc.NormalBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to post transaction %s: %w", txn.TransactionID, err)
		}

		row, ok := byCode[acc.Code]
		if !ok {
			row = &domain.TrialBalanceRow{
				Code:         acc.Code,
				Name:         acc.Name,
				Type:         acc.Type,
				DebitAmount:  decimal.Zero,
				CreditAmount: decimal.Zero,
				Section:      acc.Section,
				Category:     acc.Category,
				Subcategory:  acc.Subcategory,
			}
			byCode[acc.Code] = row
		}
		row.DebitAmount = row.DebitAmount.Add(debit)
		row.CreditAmount = row.CreditAmount.Add(credit)
		row.TransactionCount++
	}

	rows := make([]domain.TrialBalanceRow, 0, len(byCode))
	for _, row := range byCode {
		row.NetBalance = accounting.SignedBalance(row.DebitAmount, row.CreditAmount)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	return rows, nil
}

func computeTotals(rows []domain.TrialBalanceRow) domain.TrialBalanceTotals {
	totals := domain.TrialBalanceTotals{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		RowCount:     len(rows),
	}
	for _, row := range rows {
		totals.TotalDebits = totals.TotalDebits.Add(row.DebitAmount)
		totals.TotalCredits = totals.TotalCredits.Add(row.CreditAmount)
	}
	totals.Difference = totals.TotalDebits.Sub(totals.TotalCredits)
	totals.IsBalanced = accounting.IsBalanced(totals.TotalDebits, totals.TotalCredits)
	return totals
}
