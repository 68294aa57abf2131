package parser

import (
	"strings"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// structuredColumnStrategy reads rows positionally under a detected header.
// Highest-priority and highest-confidence: the document told us where each
// column lives.
type structuredColumnStrategy struct{}

func (structuredColumnStrategy) Name() string { return "structured-column" }

func (s structuredColumnStrategy) Extract(lines []RawLine, header domain.HeaderInfo) []domain.CandidateTransaction {
	if !header.Found {
		return nil
	}

	var out []domain.CandidateTransaction
	for _, line := range lines {
		if line.Index <= header.LineIndex {
			continue
		}
		if c, ok := extractColumnRow(line.Text, header, domain.ConfidenceHigh, "structured-column"); ok {
			out = append(out, c)
		}
	}
	return out
}

// extractColumnRow parses one data row against mapped header columns. Shared
// with the table-reconstruction strategy, which differs only in how it finds
// the header and where it stops.
func extractColumnRow(text string, header domain.HeaderInfo, confidence domain.Confidence, strategy string) (domain.CandidateTransaction, bool) {
	cols := splitColumns(text)

	date := columnAt(cols, header.DateCol)
	if !IsDateShaped(date) {
		return domain.CandidateTransaction{}, false
	}

	// Money-in is checked first; money-out only when money-in is zero. A row
	// never yields more than one transaction.
	amount := ParseAmount(columnAt(cols, header.MoneyInCol))
	direction := domain.Income
	if amount.IsZero() {
		amount = ParseAmount(columnAt(cols, header.MoneyOutCol))
		direction = domain.Expense
	}
	amount = amount.Abs()
	if amount.IsZero() {
		return domain.CandidateTransaction{}, false
	}

	description := columnAt(cols, header.DescCol)
	if description == "" || isNumericColumn(description) {
		description = longestNonNumericColumn(cols, header.DateCol)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.CandidateTransaction{}, false
	}

	return domain.CandidateTransaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Direction:   direction,
		Currency:    DetectCurrency(text),
		Category:    Categorize(description),
		Confidence:  confidence,
		Strategy:    strategy,
	}, true
}

// columnAt returns the column at index i, or "" when the row is short or the
// column was never mapped. Data rows routinely have fewer columns than the
// header when empty cells collapse.
func columnAt(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i]
}

// longestNonNumericColumn infers the description when the header did not map
// one: the widest column that is neither an amount nor the date.
func longestNonNumericColumn(cols []string, dateCol int) string {
	best := ""
	for i, col := range cols {
		if i == dateCol || isNumericColumn(col) {
			continue
		}
		if len(col) > len(best) {
			best = col
		}
	}
	return best
}
