// Package chart holds the chart of accounts: a read-only mapping of account
// code to account metadata, loaded once at construction and immutable
// afterwards. A single Chart value is safely shared by concurrent pipeline
// runs without locking.
package chart

import (
	"fmt"
	"sort"

	"github.com/ledgerlift/ledgerlift/internal/apperrors"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// Chart is an immutable chart of accounts. Construct with New or Default;
// the zero value is empty and matches nothing.
type Chart struct {
	byCode  map[string]domain.Account
	ordered []string // codes in load order, for stable listings
}

// New builds a Chart from a list of accounts. Codes must be unique and every
// account must carry a valid type and normal balance.
func New(accounts []domain.Account) (*Chart, error) {
	c := &Chart{
		byCode:  make(map[string]domain.Account, len(accounts)),
		ordered: make([]string, 0, len(accounts)),
	}
	for _, acc := range accounts {
		if acc.Code == "" {
			return nil, fmt.Errorf("%w: account %q has no code", apperrors.ErrValidation, acc.Name)
		}
		if _, exists := c.byCode[acc.Code]; exists {
			return nil, fmt.Errorf("%w: duplicate account code %s", apperrors.ErrDuplicate, acc.Code)
		}
		switch acc.Type {
		case domain.Assets, domain.Liabilities, domain.Equity, domain.Revenue, domain.Expenses:
		default:
			return nil, fmt.Errorf("%w: account %s has unknown type %q", apperrors.ErrValidation, acc.Code, acc.Type)
		}
		switch acc.NormalBalance {
		case domain.DebitNormal, domain.CreditNormal:
		default:
			return nil, fmt.Errorf("%w: account %s has unknown normal balance %q", apperrors.ErrValidation, acc.Code, acc.NormalBalance)
		}
		c.byCode[acc.Code] = acc
		c.ordered = append(c.ordered, acc.Code)
	}
	return c, nil
}

// Get returns the account for code.
func (c *Chart) Get(code string) (domain.Account, error) {
	acc, ok := c.byCode[code]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
	}
	return acc, nil
}

// Has reports whether code exists in the chart.
func (c *Chart) Has(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// All returns every account in load order. The slice is a copy; callers
// cannot mutate the chart through it.
func (c *Chart) All() []domain.Account {
	out := make([]domain.Account, 0, len(c.ordered))
	for _, code := range c.ordered {
		out = append(out, c.byCode[code])
	}
	return out
}

// ByType returns the accounts of the given type, sorted by code.
func (c *Chart) ByType(accountType domain.AccountType) []domain.Account {
	var out []domain.Account
	for _, code := range c.ordered {
		if acc := c.byCode[code]; acc.Type == accountType {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Len returns the number of accounts.
func (c *Chart) Len() int {
	return len(c.ordered)
}
