package chart

import "github.com/ledgerlift/ledgerlift/internal/core/domain"

// Default returns the built-in UK small-business chart of accounts.
// Codes follow the familiar four-digit convention: 1xxx assets, 2xxx
// liabilities, 3xxx equity, 4xxx revenue, 7xxx-8xxx expenses.
func Default() *Chart {
	c, err := New(defaultAccounts())
	if err != nil {
		// The built-in list is static; a failure here is a programming error.
		panic("chart: invalid default chart of accounts: " + err.Error())
	}
	return c
}

func defaultAccounts() []domain.Account {
	return []domain.Account{
		// Assets
		{Code: "1100", Name: "Debtors Control Account", Type: domain.Assets, NormalBalance: domain.DebitNormal, TaxCode: "T9", Section: "Assets", Category: "Current Assets", Subcategory: "Receivables"},
		{Code: "1200", Name: "Bank Current Account", Type: domain.Assets, NormalBalance: domain.DebitNormal, TaxCode: "T9", Section: "Assets", Category: "Current Assets", Subcategory: "Bank"},
		{Code: "1230", Name: "Petty Cash", Type: domain.Assets, NormalBalance: domain.DebitNormal, TaxCode: "T9", Section: "Assets", Category: "Current Assets", Subcategory: "Cash"},

		// Liabilities
		{Code: "2100", Name: "Creditors Control Account", Type: domain.Liabilities, NormalBalance: domain.CreditNormal, TaxCode: "T9", Section: "Liabilities", Category: "Current Liabilities", Subcategory: "Payables"},
		{Code: "2200", Name: "VAT Control Account", Type: domain.Liabilities, NormalBalance: domain.CreditNormal, TaxCode: "T9", Section: "Liabilities", Category: "Current Liabilities", Subcategory: "Tax"},

		// Equity
		{Code: "3000", Name: "Owner Capital", Type: domain.Equity, NormalBalance: domain.CreditNormal, TaxCode: "T9", Section: "Equity", Category: "Capital", Subcategory: "Introduced"},
		{Code: "3200", Name: "Retained Earnings", Type: domain.Equity, NormalBalance: domain.CreditNormal, TaxCode: "T9", Section: "Equity", Category: "Capital", Subcategory: "Retained"},

		// Revenue
		{Code: "4000", Name: "Sales", Type: domain.Revenue, NormalBalance: domain.CreditNormal, TaxCode: "T1", Section: "Income", Category: "Turnover", Subcategory: "Sales"},
		{Code: "4903", Name: "Commissions and Fees Received", Type: domain.Revenue, NormalBalance: domain.CreditNormal, TaxCode: "T0", Section: "Income", Category: "Other Income", Subcategory: "Fees"},
		{Code: "4906", Name: "Bank Interest Received", Type: domain.Revenue, NormalBalance: domain.CreditNormal, TaxCode: "T9", Section: "Income", Category: "Other Income", Subcategory: "Interest"},

		// Expenses
		{Code: "7100", Name: "Rent", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T0", Section: "Expenses", Category: "Overheads", Subcategory: "Premises"},
		{Code: "7200", Name: "Gas, Electricity and Water", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Utilities"},
		{Code: "7300", Name: "Fuel and Motor Expenses", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Motor"},
		{Code: "7400", Name: "Travelling", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Travel"},
		{Code: "7403", Name: "Entertaining and Meals", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Entertaining"},
		{Code: "7502", Name: "Telephone and Internet", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Telecoms"},
		{Code: "7504", Name: "Office Supplies and Stationery", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Office"},
		{Code: "7600", Name: "Legal Fees", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Professional"},
		{Code: "7601", Name: "Accountancy Fees", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Professional"},
		{Code: "7901", Name: "Bank Charges", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T9", Section: "Expenses", Category: "Overheads", Subcategory: "Finance"},
		{Code: "8201", Name: "Subscriptions", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Subscriptions"},
		{Code: "8204", Name: "Insurance", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T0", Section: "Expenses", Category: "Overheads", Subcategory: "Insurance"},
		{Code: "8250", Name: "Sundry Expenses", Type: domain.Expenses, NormalBalance: domain.DebitNormal, TaxCode: "T1", Section: "Expenses", Category: "Overheads", Subcategory: "Sundry"},
	}
}
