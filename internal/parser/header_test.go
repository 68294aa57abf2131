package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectHeader_InAndOutColumns(t *testing.T) {
	lines := SegmentLines("Barclays Bank\n\nDate  Description  Money In  Money Out  Balance\n01/03/2024  SALARY  1850.00")

	h := DetectHeader(lines)

	require.True(t, h.Found)
	assert.Equal(t, 2, h.LineIndex)
	assert.Equal(t, 0, h.DateCol)
	assert.Equal(t, 1, h.DescCol)
	assert.Equal(t, 2, h.MoneyInCol)
	assert.Equal(t, 3, h.MoneyOutCol)
	assert.Equal(t, 4, h.BalanceCol)
}

func TestDetectHeader_OutColumnOnly(t *testing.T) {
	// A single money-direction column is enough to accept a header.
	lines := SegmentLines("Date  Description  Money Out  Balance")

	h := DetectHeader(lines)

	require.True(t, h.Found)
	assert.Equal(t, 0, h.DateCol)
	assert.Equal(t, 1, h.DescCol)
	assert.Equal(t, -1, h.MoneyInCol)
	assert.Equal(t, 2, h.MoneyOutCol)
	assert.Equal(t, 3, h.BalanceCol)
}

func TestDetectHeader_DebitCreditVocabulary(t *testing.T) {
	lines := SegmentLines("Date  Payment Type  Debit  Credit")

	h := DetectHeader(lines)

	require.True(t, h.Found)
	assert.Equal(t, 3, h.MoneyInCol)  // credit
	assert.Equal(t, 2, h.MoneyOutCol) // debit
}

func TestDetectHeader_RejectsTooFewColumns(t *testing.T) {
	// Date and money vocabulary on one line, but only two columns.
	lines := SegmentLines("Date  Money In")

	h := DetectHeader(lines)

	assert.False(t, h.Found)
	assert.Equal(t, -1, h.DateCol)
}

func TestDetectHeader_IgnoresShortAndProseLines(t *testing.T) {
	lines := SegmentLines("Page 1\nYour money is safe with us\nNo header in this document at all")

	h := DetectHeader(lines)

	assert.False(t, h.Found)
	assert.Equal(t, -1, h.LineIndex)
	assert.Equal(t, -1, h.MoneyInCol)
	assert.Equal(t, -1, h.MoneyOutCol)
	assert.Equal(t, -1, h.BalanceCol)
	assert.Equal(t, -1, h.DescCol)
}

func TestDetectHeaderStrict_NeedsMatchedPair(t *testing.T) {
	// Loose detection accepts an OUT-only header, strict does not.
	outOnly := SegmentLines("Date  Description  Money Out  Balance")
	assert.True(t, DetectHeader(outOnly).Found)
	assert.False(t, DetectHeaderStrict(outOnly).Found)

	pair := SegmentLines("Date  Description  Money In  Money Out")
	assert.True(t, DetectHeaderStrict(pair).Found)
}
