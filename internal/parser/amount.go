package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches currency-formatted amounts on a line: an optional
// currency symbol, digits with optional thousands separators and a two-digit
// decimal part, optionally wrapped in parentheses.
var amountPattern = regexp.MustCompile(`\(?[£$€]?\s?\d{1,3}(?:,\d{3})*\.\d{2}\)?|\(?[£$€]\s?\d+(?:\.\d{1,2})?\)?`)

// ParseAmount converts an amount string like "1,234.56", "£45.20" or
// "(12.00)" into a decimal. Parentheses denote a negative value. A string
// with no usable number parses to zero; "no amount found" is not an error.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	replacer := strings.NewReplacer(
		"£", "", "$", "", "€", "",
		",", "", " ", "", " ", "",
	)
	s = replacer.Replace(s)
	if s == "" || s == "-" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return amount.Neg()
	}
	return amount
}

// amountMatch is one currency-formatted amount found on a line, with the
// byte offset where it starts. The offset feeds the position-based direction
// heuristic used by the fallback strategies.
type amountMatch struct {
	Value  decimal.Decimal
	Offset int
}

// findAmounts returns every currency-formatted amount on the line, in order.
func findAmounts(line string) []amountMatch {
	locs := amountPattern.FindAllStringIndex(line, -1)
	matches := make([]amountMatch, 0, len(locs))
	for _, loc := range locs {
		v := ParseAmount(line[loc[0]:loc[1]])
		if v.IsZero() {
			continue
		}
		matches = append(matches, amountMatch{Value: v, Offset: loc[0]})
	}
	return matches
}

// DetectCurrency returns the ISO currency code for the first currency symbol
// on the line, or "" when the line is symbol-free; the caller fills its
// configured default.
func DetectCurrency(line string) string {
	switch {
	case strings.Contains(line, "£"):
		return "GBP"
	case strings.Contains(line, "$"):
		return "USD"
	case strings.Contains(line, "€"):
		return "EUR"
	default:
		return ""
	}
}

// isNumericColumn reports whether a column is entirely an amount/number,
// used when inferring a description column.
func isNumericColumn(col string) bool {
	col = strings.TrimSpace(col)
	if col == "" {
		return false
	}
	stripped := strings.NewReplacer("£", "", "$", "", "€", "", ",", "", ".", "", "(", "", ")", "", "-", "", "/", "").Replace(col)
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return stripped != ""
}
