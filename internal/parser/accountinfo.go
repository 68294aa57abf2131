package parser

import (
	"regexp"
	"strings"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// Best-effort statement metadata. Simple keyword and regex lookup over the
// raw text; every field may legitimately stay empty.

var knownBanks = []string{
	"Barclays", "HSBC", "Lloyds", "NatWest", "Santander", "Nationwide",
	"Halifax", "Metro Bank", "Monzo", "Starling", "Revolut", "TSB",
	"Royal Bank of Scotland", "Co-operative Bank", "First Direct",
}

var accountTypeVocab = []string{
	"business account", "current account", "savings account", "credit card",
}

var (
	accountNumberPattern = regexp.MustCompile(`\b(\d{8})\b`)
	sortCodePattern      = regexp.MustCompile(`\b(\d{2}-\d{2}-\d{2})\b`)
)

// ExtractAccountInfo pulls bank name, account type, masked account number and
// sort code, and the statement period out of the raw text.
func ExtractAccountInfo(text string) domain.AccountInfo {
	info := domain.AccountInfo{}
	lower := strings.ToLower(text)

	for _, bank := range knownBanks {
		if strings.Contains(lower, strings.ToLower(bank)) {
			info.BankName = bank
			break
		}
	}

	for _, at := range accountTypeVocab {
		if strings.Contains(lower, at) {
			info.AccountType = titleCase(at)
			break
		}
	}

	if m := accountNumberPattern.FindString(text); m != "" {
		info.AccountNumber = maskAccountNumber(m)
	}
	if m := sortCodePattern.FindString(text); m != "" {
		info.SortCode = maskSortCode(m)
	}
	info.StatementPeriod = extractStatementPeriod(text)

	return info
}

// maskAccountNumber keeps only the last four digits.
func maskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

// maskSortCode keeps only the final pair.
func maskSortCode(code string) string {
	parts := strings.Split(code, "-")
	if len(parts) != 3 {
		return code
	}
	return "**-**-" + parts[2]
}

// titleCase capitalizes each word of a lowercase vocabulary entry.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// extractStatementPeriod looks for a period line carrying two dates.
func extractStatementPeriod(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "statement period") && !strings.Contains(lower, "period") {
			continue
		}
		if dates := dateSlashPattern.FindAllString(line, 2); len(dates) == 2 {
			return dates[0] + " to " + dates[1]
		}
		if dates := dateTextPattern.FindAllString(line, 2); len(dates) == 2 {
			return dates[0] + " to " + dates[1]
		}
	}
	return ""
}
