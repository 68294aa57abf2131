package accounting

import (
	"fmt"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the rounding slack allowed by the double-entry check:
// a ledger is balanced when |total debits - total credits| <= 0.01.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// DebitCredit maps a statement transaction's direction onto debit/credit
// amounts for the coded account. The coded account receives the contra side
// of the implicit bank posting: an expense increases the account's debit
// amount, an income increases its credit amount. For a DR-normal expense
// account that grows the normal side; for a CR-normal revenue account the
// growing side arrives from the opposite direction (income), which is how the
// two conventions invert.
func DebitCredit(txn domain.Transaction, normalBalance domain.NormalBalance) (debit, credit decimal.Decimal, err error) {
	switch normalBalance {
	case domain.DebitNormal, domain.CreditNormal:
	default:
		return decimal.Zero, decimal.Zero,
			fmt.Errorf("unknown normal balance %q for account code %s", normalBalance, txn.AccountCode)
	}

	amount := txn.Amount.Abs()
	if txn.Direction == domain.Income {
		return decimal.Zero, amount, nil
	}
	return amount, decimal.Zero, nil
}

// SignedBalance converts per-account debit and credit totals into the signed
// trial-balance amount under the UK convention: debit balances positive,
// credit balances negative.
func SignedBalance(debit, credit decimal.Decimal) decimal.Decimal {
	return debit.Sub(credit)
}

// IsBalanced reports whether total debits equal total credits within
// BalanceTolerance.
func IsBalanced(totalDebits, totalCredits decimal.Decimal) bool {
	return totalDebits.Sub(totalCredits).Abs().LessThanOrEqual(BalanceTolerance)
}
