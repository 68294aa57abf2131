package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is a per-account aggregate derived from coded transactions.
// NetBalance follows the UK convention: debit balances positive, credit
// balances negative. Rows are a view, recomputed on demand, never persisted.
type TrialBalanceRow struct {
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Type             AccountType     `json:"type"`
	DebitAmount      decimal.Decimal `json:"debitAmount"`
	CreditAmount     decimal.Decimal `json:"creditAmount"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	TransactionCount int             `json:"transactionCount"`
	Section          string          `json:"section"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory"`
}

// TrialBalanceTotals summarizes a trial balance and its double-entry check.
// Balanced means |TotalDebits - TotalCredits| <= 0.01 currency units.
type TrialBalanceTotals struct {
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"`
	IsBalanced   bool            `json:"isBalanced"`
	RowCount     int             `json:"rowCount"`
}

// TrialBalance is the full structured report: rows plus totals.
type TrialBalance struct {
	Rows   []TrialBalanceRow  `json:"rows"`
	Totals TrialBalanceTotals `json:"totals"`
}

// CommitValidation is the result of checking whether a user's ledger is ready
// to commit. An unbalanced ledger is reported, not thrown; it stays queryable.
type CommitValidation struct {
	IsBalanced       bool     `json:"isBalanced"`
	UncodedCount     int      `json:"uncodedCount"`
	ReadyForCommit   bool     `json:"readyForCommit"`
	Errors           []string `json:"errors,omitempty"`
	Warnings         []string `json:"warnings,omitempty"` // e.g. zero-balance accounts
	TransactionCount int      `json:"transactionCount"`
}

// CodeSuggestion is one ranked account suggestion for a transaction.
type CodeSuggestion struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Confidence Confidence `json:"confidence"`
}
