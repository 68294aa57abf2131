package accounting

import (
	"testing"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(direction domain.Direction, amount string) domain.Transaction {
	return domain.Transaction{
		CandidateTransaction: domain.CandidateTransaction{
			Direction: direction,
			Amount:    decimal.RequireFromString(amount),
		},
		AccountCode: "4000",
	}
}

func TestDebitCredit(t *testing.T) {
	// An expense posts to the coded account's debit side, an income to its
	// credit side, whatever the account's normal balance.
	debit, credit, err := DebitCredit(txn(domain.Expense, "45.20"), domain.DebitNormal)
	require.NoError(t, err)
	assert.Equal(t, "45.2", debit.String())
	assert.True(t, credit.IsZero())

	debit, credit, err = DebitCredit(txn(domain.Income, "1850.00"), domain.CreditNormal)
	require.NoError(t, err)
	assert.True(t, debit.IsZero())
	assert.Equal(t, "1850", credit.String())

	debit, credit, err = DebitCredit(txn(domain.Income, "2.50"), domain.DebitNormal)
	require.NoError(t, err)
	assert.True(t, debit.IsZero())
	assert.Equal(t, "2.5", credit.String())
}

func TestDebitCredit_NegativeAmountsPostPositive(t *testing.T) {
	debit, _, err := DebitCredit(txn(domain.Expense, "-12.00"), domain.DebitNormal)
	require.NoError(t, err)
	assert.Equal(t, "12", debit.String())
}

func TestDebitCredit_UnknownNormalBalance(t *testing.T) {
	_, _, err := DebitCredit(txn(domain.Expense, "1.00"), "XX")
	assert.Error(t, err)
}

func TestSignedBalance(t *testing.T) {
	d := decimal.RequireFromString("100.00")
	c := decimal.RequireFromString("40.00")

	assert.Equal(t, "60", SignedBalance(d, c).String())
	assert.Equal(t, "-60", SignedBalance(c, d).String())
}

func TestIsBalanced(t *testing.T) {
	hundred := decimal.RequireFromString("100.00")

	assert.True(t, IsBalanced(hundred, hundred))
	assert.True(t, IsBalanced(hundred, decimal.RequireFromString("100.01")))
	assert.False(t, IsBalanced(hundred, decimal.RequireFromString("100.02")))
	assert.True(t, IsBalanced(decimal.Zero, decimal.Zero))
}
