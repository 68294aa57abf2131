package dto

// CodeAssignment assigns a chart-of-accounts code to one transaction.
type CodeAssignment struct {
	TransactionID string `json:"transactionID" validate:"required"`
	AccountCode   string `json:"accountCode" validate:"required"`
}

// CodeItemError reports a single failed item in a bulk coding run. Other
// items keep processing; a bad code never aborts the batch.
type CodeItemError struct {
	TransactionID string `json:"transactionID"`
	Error         string `json:"error"`
}

// BulkCodeResult summarizes a bulk coding run.
type BulkCodeResult struct {
	Updated int             `json:"updated"`
	Errors  []CodeItemError `json:"errors,omitempty"`
}
