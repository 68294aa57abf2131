package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether money moved into or out of the statement account.
type Direction string

const (
	Income  Direction = "INCOME"
	Expense Direction = "EXPENSE"
)

// Confidence grades how trustworthy an extraction or coding decision is.
// Structured-column extraction is high; position-based direction guessing is
// low and must stay visibly low all the way to the caller.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// CandidateTransaction is an unvalidated transaction produced by one
// extraction strategy, before deduplication and account coding. The date is
// the raw string as it appeared on the statement; Amount is always a positive
// magnitude with the direction stored separately.
type CandidateTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   Direction       `json:"direction"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"` // Coarse text category, independent of account coding
	Confidence  Confidence      `json:"confidence"`
	Strategy    string          `json:"strategy"` // Name of the extraction strategy that produced it
}

// Transaction is a deduplicated, optionally coded statement transaction.
// AccountCode is empty until coding assigns a chart-of-accounts code.
type Transaction struct {
	TransactionID string `json:"transactionID"` // Primary key (UUID)
	UploadID      string `json:"uploadID"`      // FK -> uploads.upload_id
	UserID        string `json:"userID"`        // Owning user
	CandidateTransaction
	AccountCode      string     `json:"accountCode,omitempty"`
	CodingConfidence Confidence `json:"codingConfidence,omitempty"`
	CodedAt          time.Time  `json:"codedAt,omitempty"`
	AuditFields
}

// IsCoded reports whether the transaction has been assigned an account code.
func (t Transaction) IsCoded() bool {
	return t.AccountCode != ""
}

// IsIncome reports whether money moved into the account.
func (t CandidateTransaction) IsIncome() bool {
	return t.Direction == Income
}
