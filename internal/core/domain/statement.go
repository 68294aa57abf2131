package domain

import "time"

// MediaType declares the format of an uploaded statement document.
type MediaType string

const (
	MediaPDF  MediaType = "application/pdf"
	MediaCSV  MediaType = "text/csv"
	MediaText MediaType = "text/plain"
)

// HeaderInfo describes a detected tabular header row in statement text.
// Found=false is a normal state, not an error; it routes extraction to the
// pattern-based fallback strategies. Column indices are -1 when unmapped.
type HeaderInfo struct {
	Found       bool `json:"found"`
	LineIndex   int  `json:"lineIndex"`
	DateCol     int  `json:"dateCol"`
	DescCol     int  `json:"descCol"`
	MoneyInCol  int  `json:"moneyInCol"`
	MoneyOutCol int  `json:"moneyOutCol"`
	BalanceCol  int  `json:"balanceCol"`
}

// AccountInfo is best-effort statement metadata pulled out of the raw text by
// keyword and regex lookup. Any field may be empty.
type AccountInfo struct {
	BankName        string `json:"bankName,omitempty"`
	AccountType     string `json:"accountType,omitempty"`
	AccountNumber   string `json:"accountNumber,omitempty"` // Masked, last four digits only
	SortCode        string `json:"sortCode,omitempty"`      // Masked
	StatementPeriod string `json:"statementPeriod,omitempty"`
}

// ParseResult is the sole output contract of the statement pipeline. Parsing
// is a total function: every input yields a ParseResult, never a panic. A run
// that found nothing has Success=false and a diagnostic Error string.
type ParseResult struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
	AccountInfo  AccountInfo   `json:"accountInfo"`
	Error        string        `json:"error,omitempty"`
}

// Upload records one ingested statement document.
type Upload struct {
	UploadID         string    `json:"uploadID"` // Primary key (UUID)
	UserID           string    `json:"userID"`
	Filename         string    `json:"filename"`
	MediaType        MediaType `json:"mediaType"`
	TransactionCount int       `json:"transactionCount"`
	UploadedAt       time.Time `json:"uploadedAt"`
	AuditFields
}
