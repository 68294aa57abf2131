package parser

import (
	"testing"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(date, desc, amount string) domain.CandidateTransaction {
	return domain.CandidateTransaction{
		Date:        date,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Direction:   domain.Expense,
	}
}

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	in := []domain.CandidateTransaction{
		candidate("01/03/2024", "TESCO STORES 1234", "45.20"),
		candidate("01/03/2024", "TESCO STORES 5678", "45.20"), // same 10-char prefix
		candidate("01/03/2024", "COSTA COFFEE", "3.50"),
	}

	out := Dedupe(in)

	require.Len(t, out, 2)
	assert.Equal(t, "TESCO STORES 1234", out[0].Description)
	assert.Equal(t, "COSTA COFFEE", out[1].Description)
}

func TestDedupe_DifferentDateOrAmountKept(t *testing.T) {
	in := []domain.CandidateTransaction{
		candidate("01/03/2024", "TESCO STORES", "45.20"),
		candidate("02/03/2024", "TESCO STORES", "45.20"),
		candidate("01/03/2024", "TESCO STORES", "12.00"),
	}

	out := Dedupe(in)

	assert.Len(t, out, 3)
}

func TestDedupe_CaseInsensitiveDescription(t *testing.T) {
	in := []domain.CandidateTransaction{
		candidate("01/03/2024", "Tesco Stores", "45.20"),
		candidate("01/03/2024", "TESCO STORES", "45.20"),
	}

	out := Dedupe(in)

	assert.Len(t, out, 1)
}

func TestDedupe_ShortDescriptions(t *testing.T) {
	in := []domain.CandidateTransaction{
		candidate("01/03/2024", "FEE", "1.00"),
		candidate("01/03/2024", "FEE", "1.00"),
	}

	assert.Len(t, Dedupe(in), 1)
	assert.Empty(t, Dedupe(nil))
}
