package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"45.20", "45.2"},
		{"£45.20", "45.2"},
		{"1,234.56", "1234.56"},
		{"£ 1,234.56", "1234.56"},
		{"$99.99", "99.99"},
		{"€10.00", "10"},
		{"(12.00)", "-12"},
		{"(£12.00)", "-12"},
		{"", "0"},
		{"-", "0"},
		{"TESCO", "0"},
		{"12.34.56", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in).String())
		})
	}
}

func TestFindAmounts(t *testing.T) {
	matches := findAmounts("01/03/2024 TESCO £45.20 balance 1,804.80")

	require.Len(t, matches, 2)
	assert.True(t, matches[0].Value.Equal(decimal.RequireFromString("45.20")))
	assert.True(t, matches[1].Value.Equal(decimal.RequireFromString("1804.80")))
	assert.Less(t, matches[0].Offset, matches[1].Offset)
}

func TestFindAmounts_SkipsZeroValues(t *testing.T) {
	matches := findAmounts("ref 0.00 then 5.00")

	require.Len(t, matches, 1)
	assert.True(t, matches[0].Value.Equal(decimal.RequireFromString("5.00")))
}

func TestFindAmounts_NoneOnPlainText(t *testing.T) {
	assert.Empty(t, findAmounts("no money mentioned here"))
}

func TestDetectCurrency(t *testing.T) {
	assert.Equal(t, "USD", DetectCurrency("AMAZON $12.99"))
	assert.Equal(t, "EUR", DetectCurrency("HOTEL €85.00"))
	assert.Equal(t, "GBP", DetectCurrency("TESCO £45.20"))
	assert.Equal(t, "", DetectCurrency("TESCO 45.20"))
}

func TestIsNumericColumn(t *testing.T) {
	assert.True(t, isNumericColumn("45.20"))
	assert.True(t, isNumericColumn("£1,234.56"))
	assert.True(t, isNumericColumn("(12.00)"))
	assert.True(t, isNumericColumn("01/03/2024"))
	assert.False(t, isNumericColumn("TESCO STORES"))
	assert.False(t, isNumericColumn(""))
	assert.False(t, isNumericColumn("REF 1234"))
}
