package parser

import (
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// moneyPatternStrategy is the last resort: any line carrying both a date
// token and currency-formatted amounts yields one transaction per amount,
// with direction guessed purely from the amount's horizontal position.
// Lowest precision in the chain; every candidate is labeled low-confidence
// so downstream consumers never mistake it for structured extraction.
type moneyPatternStrategy struct{}

func (moneyPatternStrategy) Name() string { return "money-pattern" }

func (s moneyPatternStrategy) Extract(lines []RawLine, _ domain.HeaderInfo) []domain.CandidateTransaction {
	var out []domain.CandidateTransaction
	for _, line := range lines {
		date := FindDate(line.Text)
		if date == "" {
			continue
		}

		amounts := findAmounts(line.Text)
		if len(amounts) == 0 {
			continue
		}

		description := stripDateAndAmounts(line.Text, date)
		if description == "" {
			continue
		}

		for _, m := range amounts {
			out = append(out, domain.CandidateTransaction{
				Date:        date,
				Description: description,
				Amount:      m.Value.Abs(),
				Direction:   directionFromPosition(m.Offset, len(line.Text)),
				Currency:    DetectCurrency(line.Text),
				Category:    Categorize(description),
				Confidence:  domain.ConfidenceLow,
				Strategy:    "money-pattern",
			})
		}
	}
	return out
}
