package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledgerlift/ledgerlift/internal/chart"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
	portssvc "github.com/ledgerlift/ledgerlift/internal/core/ports/services"
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/ledgerlift/ledgerlift/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// maxSuggestions caps the ranked list returned by GetSuggestedCodes.
const maxSuggestions = 5

// codingService classifies transactions onto the chart of accounts by keyword
// rules. Classification is deterministic: the rule tables are ordered and the
// first keyword hit wins, so coding the same description twice always lands on
// the same code.
type codingService struct {
	BaseService
	chart   *chart.Chart
	txnRepo portsrepo.TransactionRepository
	now     func() time.Time
}

// CodingServiceOption is a functional option for configuring the coding service
type CodingServiceOption func(*codingService)

// WithCodingClock overrides the time source, for tests.
func WithCodingClock(now func() time.Time) CodingServiceOption {
	return func(s *codingService) {
		s.now = now
	}
}

// NewCodingService creates a new coding service with the provided options
func NewCodingService(coa *chart.Chart, txnRepo portsrepo.TransactionRepository, options ...CodingServiceOption) portssvc.CodingSvcFacade {
	svc := &codingService{
		chart:   coa,
		txnRepo: txnRepo,
		now:     time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure codingService implements the CodingSvcFacade interface
var _ portssvc.CodingSvcFacade = (*codingService)(nil)

// GetAccount returns the chart account for a code.
func (s *codingService) GetAccount(code string) (domain.Account, error) {
	return s.chart.Get(code)
}

// GetAllAccounts returns every chart account in load order.
func (s *codingService) GetAllAccounts() []domain.Account {
	return s.chart.All()
}

// AutoCodeTransaction returns the account code for a transaction. It never
// fails: an unmatched description falls to the direction's default code.
func (s *codingService) AutoCodeTransaction(description string, amount decimal.Decimal, isIncome bool) string {
	code, _ := s.AutoCodeWithConfidence(description, amount, isIncome)
	return code
}

// AutoCodeWithConfidence returns the code and how it was reached: high when a
// keyword rule matched, low when the description fell through to the
// direction's default catch-all.
func (s *codingService) AutoCodeWithConfidence(description string, amount decimal.Decimal, isIncome bool) (string, domain.Confidence) {
	desc := strings.ToLower(description)
	for _, rule := range rulesFor(isIncome) {
		if matchesRule(desc, rule) {
			return rule.Code, domain.ConfidenceHigh
		}
	}
	return defaultCodeFor(isIncome), domain.ConfidenceLow
}

// GetSuggestedCodes returns up to maxSuggestions ranked account suggestions:
// the auto-coded result first at high confidence, then the remaining accounts
// of the direction's broad type at low confidence.
func (s *codingService) GetSuggestedCodes(description string, amount decimal.Decimal, isIncome bool) []domain.CodeSuggestion {
	primary, _ := s.AutoCodeWithConfidence(description, amount, isIncome)

	out := make([]domain.CodeSuggestion, 0, maxSuggestions)
	if acc, err := s.chart.Get(primary); err == nil {
		out = append(out, domain.CodeSuggestion{
			Code:       acc.Code,
			Name:       acc.Name,
			Confidence: domain.ConfidenceHigh,
		})
	}

	accountType := domain.Expenses
	if isIncome {
		accountType = domain.Revenue
	}
	for _, acc := range s.chart.ByType(accountType) {
		if len(out) >= maxSuggestions {
			break
		}
		if acc.Code == primary {
			continue
		}
		out = append(out, domain.CodeSuggestion{
			Code:       acc.Code,
			Name:       acc.Name,
			Confidence: domain.ConfidenceLow,
		})
	}
	return out
}

// BulkAutoCode auto-codes every uncoded transaction of the user. Items fail
// independently; one bad row never aborts the run.
func (s *codingService) BulkAutoCode(ctx context.Context, userID string) (*dto.BulkCodeResult, error) {
	transactions, err := s.txnRepo.ListTransactionsByUser(ctx, userID, "", "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for bulk auto-coding",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	result := &dto.BulkCodeResult{}
	for _, txn := range transactions {
		if txn.IsCoded() {
			continue
		}
		code, confidence := s.AutoCodeWithConfidence(txn.Description, txn.Amount, txn.IsIncome())
		if err := s.txnRepo.UpdateTransactionCode(ctx, userID, txn.TransactionID, code, confidence, s.now()); err != nil {
			result.Errors = append(result.Errors, dto.CodeItemError{
				TransactionID: txn.TransactionID,
				Error:         err.Error(),
			})
			continue
		}
		metrics.TransactionsCoded.WithLabelValues("auto").Inc()
		result.Updated++
	}

	s.LogInfo(ctx, "Bulk auto-coding finished",
		slog.String("user_id", userID),
		slog.Int("updated", result.Updated),
		slog.Int("errors", len(result.Errors)))
	return result, nil
}

// ApplyCodes applies explicit code assignments. An unknown account code or a
// missing transaction is reported per item.
func (s *codingService) ApplyCodes(ctx context.Context, userID string, assignments []dto.CodeAssignment) (*dto.BulkCodeResult, error) {
	result := &dto.BulkCodeResult{}
	for _, a := range assignments {
		if !s.chart.Has(a.AccountCode) {
			result.Errors = append(result.Errors, dto.CodeItemError{
				TransactionID: a.TransactionID,
				Error:         fmt.Sprintf("unknown account code %s", a.AccountCode),
			})
			continue
		}
		if err := s.txnRepo.UpdateTransactionCode(ctx, userID, a.TransactionID, a.AccountCode, domain.ConfidenceHigh, s.now()); err != nil {
			result.Errors = append(result.Errors, dto.CodeItemError{
				TransactionID: a.TransactionID,
				Error:         err.Error(),
			})
			continue
		}
		metrics.TransactionsCoded.WithLabelValues("manual").Inc()
		result.Updated++
	}

	s.LogInfo(ctx, "Code assignments applied",
		slog.String("user_id", userID),
		slog.Int("updated", result.Updated),
		slog.Int("errors", len(result.Errors)))
	return result, nil
}

func rulesFor(isIncome bool) []chart.CodingRule {
	if isIncome {
		return chart.IncomeRules()
	}
	return chart.ExpenseRules()
}

func defaultCodeFor(isIncome bool) string {
	if isIncome {
		return chart.DefaultIncomeCode
	}
	return chart.DefaultExpenseCode
}

func matchesRule(lowerDesc string, rule chart.CodingRule) bool {
	for _, kw := range rule.Keywords {
		if strings.Contains(lowerDesc, kw) {
			return true
		}
	}
	return false
}
