package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database shape of a statement transaction. The amount is
// always a positive magnitude; direction is stored separately. AccountCode is
// NULL until coding assigns one.
type Transaction struct {
	TransactionID    string          `json:"transactionID"` // Primary Key (UUID)
	UploadID         string          `json:"uploadID"`      // FK -> uploads.upload_id (Not Null)
	UserID           string          `json:"userID"`        // Owning user (Not Null)
	TxnDate          string          `json:"txnDate"`       // ISO date when normalization succeeded, raw text otherwise
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"` // Positive value; precise decimal type
	Direction        string          `json:"direction"`
	Currency         string          `json:"currency"`
	Category         string          `json:"category"`
	Confidence       string          `json:"confidence"`
	Strategy         string          `json:"strategy"`
	AccountCode      string          `json:"accountCode"`      // Nullable
	CodingConfidence string          `json:"codingConfidence"` // Nullable
	CodedAt          *time.Time      `json:"codedAt"`          // Nullable
	AuditFields
}
