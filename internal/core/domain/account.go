package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Assets      AccountType = "ASSETS"
	Liabilities AccountType = "LIABILITIES"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	Expenses    AccountType = "EXPENSES"
)

// NormalBalance is the side on which an account's balance conventionally
// increases. It drives the mapping from transaction direction to debit/credit
// amounts in the trial balance.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DR"
	CreditNormal NormalBalance = "CR"
)

// Account represents a single entry in the chart of accounts.
// Accounts are loaded once and never mutated; everything else refers to them
// by Code only.
type Account struct {
	Code          string        `json:"code"` // Stable identifier, e.g. "4000"
	Name          string        `json:"name"`
	Type          AccountType   `json:"type"`
	NormalBalance NormalBalance `json:"normalBalance"`
	TaxCode       string        `json:"taxCode"` // e.g. "T1" standard rate, "T9" outside scope
	Section       string        `json:"section"` // Trial balance roll-up labels
	Category      string        `json:"category"`
	Subcategory   string        `json:"subcategory"`
}

// IsDebitNormal reports whether the account balance increases on the debit side.
func (a Account) IsDebitNormal() bool {
	return a.NormalBalance == DebitNormal
}
