package parser

import (
	"strings"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// sectionVocab marks lines that open a transaction section.
var sectionVocab = []string{"transaction", "statement", "activity"}

// sectionScopedStrategy finds transaction sections by their heading and
// parses date-bearing lines inside them. Direction comes from where the
// amount sits on the line, which is why this ranks below structured-column.
type sectionScopedStrategy struct{}

func (sectionScopedStrategy) Name() string { return "section-scoped" }

func (s sectionScopedStrategy) Extract(lines []RawLine, _ domain.HeaderInfo) []domain.CandidateTransaction {
	var out []domain.CandidateTransaction

	i := 0
	for i < len(lines) {
		if !isSectionHeading(lines[i].Text) {
			i++
			continue
		}

		// The section runs until the next blank line in the source document.
		// Blank lines were dropped during segmentation, so a gap in source
		// indices marks the boundary.
		prevIndex := lines[i].Index
		j := i + 1
		for ; j < len(lines); j++ {
			if lines[j].Index > prevIndex+1 {
				break
			}
			prevIndex = lines[j].Index

			if c, ok := extractPositionalLine(lines[j].Text, domain.ConfidenceMedium, "section-scoped"); ok {
				out = append(out, c)
			}
		}
		i = j
	}
	return out
}

func isSectionHeading(text string) bool {
	lower := strings.ToLower(text)
	if containsAny(lower, sectionVocab) {
		return true
	}
	// A date word next to in/out words also reads as a section opener.
	return containsAny(lower, dateVocab) &&
		(containsAny(lower, moneyInVocab) || containsAny(lower, moneyOutVocab))
}

// extractPositionalLine parses a date-bearing line for trailing money
// amounts, inferring direction from the amount's horizontal position: right
// half of the line reads as income, left half as expense. The heuristic is
// acknowledged imprecise, which the confidence grade records.
func extractPositionalLine(text string, confidence domain.Confidence, strategy string) (domain.CandidateTransaction, bool) {
	date := FindDate(text)
	if date == "" {
		return domain.CandidateTransaction{}, false
	}

	amounts := findAmounts(text)
	if len(amounts) == 0 {
		return domain.CandidateTransaction{}, false
	}

	// Trailing amount: the last one on the line.
	m := amounts[len(amounts)-1]

	description := stripDateAndAmounts(text, date)
	if description == "" {
		return domain.CandidateTransaction{}, false
	}

	return domain.CandidateTransaction{
		Date:        date,
		Description: description,
		Amount:      m.Value.Abs(),
		Direction:   directionFromPosition(m.Offset, len(text)),
		Currency:    DetectCurrency(text),
		Category:    Categorize(description),
		Confidence:  confidence,
		Strategy:    strategy,
	}, true
}

// directionFromPosition guesses direction from the amount's position in the
// line. Low precision; only the fallback strategies rely on it.
func directionFromPosition(offset, lineLen int) domain.Direction {
	if offset >= lineLen/2 {
		return domain.Income
	}
	return domain.Expense
}

// stripDateAndAmounts removes the date token and every amount token from the
// line, leaving the description text.
func stripDateAndAmounts(text, date string) string {
	rest := strings.Replace(text, date, "", 1)
	rest = amountPattern.ReplaceAllString(rest, "")
	rest = strings.Join(strings.Fields(rest), " ")
	return strings.TrimSpace(rest)
}
