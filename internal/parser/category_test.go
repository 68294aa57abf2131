package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"ACME LTD SALARY MARCH", "Income:Salary"},
		{"GROSS INTEREST PAID", "Income:Interest"},
		{"TESCO STORES 1234", "Expenses:Groceries"},
		{"COSTA COFFEE LEEDS", "Expenses:Dining"},
		{"TRAINLINE LONDON", "Expenses:Transport"},
		{"NETFLIX.COM", "Expenses:Entertainment"},
		{"BRITISH GAS DD", "Expenses:Utilities"},
		{"RENT MARCH FLAT 2", "Expenses:Housing"},
		{"UNKNOWN MERCHANT 99", UncategorizedCategory},
		{"", UncategorizedCategory},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.desc))
		})
	}
}
