package services

import (
	"context"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/shopspring/decimal"
)

// ChartReaderSvc exposes the immutable chart of accounts.
type ChartReaderSvc interface {
	GetAccount(code string) (domain.Account, error)
	GetAllAccounts() []domain.Account
}

// AutoCoderSvc classifies transactions onto chart-of-accounts codes.
// AutoCodeTransaction is a pure function of its inputs and the chart: same
// inputs always produce the same code, so re-coding is idempotent.
type AutoCoderSvc interface {
	AutoCodeTransaction(description string, amount decimal.Decimal, isIncome bool) string

	// AutoCodeWithConfidence returns the same code as AutoCodeTransaction
	// together with the confidence of the match: high when a keyword rule
	// matched, low when the code fell through to the direction default.
	AutoCodeWithConfidence(description string, amount decimal.Decimal, isIncome bool) (string, domain.Confidence)

	// GetSuggestedCodes ranks up to 5 suggestions: the auto-coded result
	// first at high confidence, then other accounts of the same broad type
	// at low confidence.
	GetSuggestedCodes(description string, amount decimal.Decimal, isIncome bool) []domain.CodeSuggestion
}

// CodingWriterSvc applies codes to persisted transactions.
type CodingWriterSvc interface {
	// BulkAutoCode auto-codes every uncoded transaction of the user.
	BulkAutoCode(ctx context.Context, userID string) (*dto.BulkCodeResult, error)

	// ApplyCodes sets explicit codes. Items are processed independently; an
	// invalid account code is reported per item and never aborts the batch.
	ApplyCodes(ctx context.Context, userID string, assignments []dto.CodeAssignment) (*dto.BulkCodeResult, error)
}

// CodingSvcFacade combines classification operations.
type CodingSvcFacade interface {
	ChartReaderSvc
	AutoCoderSvc
	CodingWriterSvc
}
