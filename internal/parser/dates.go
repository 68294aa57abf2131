package parser

import (
	"regexp"
	"time"
)

// Date patterns seen in UK bank statements.
var (
	// DD/MM/YYYY or DD/MM/YY
	dateSlashPattern = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`)
	// DD Mon YYYY or DD Mon (e.g. "15 Jan 2024", "4 Dec")
	dateTextPattern = regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*(?:\s+\d{2,4})?)\b`)
	// DD-Mon-YYYY or DD-Mon-YY
	dateDashPattern = regexp.MustCompile(`(?i)\b(\d{1,2}-(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*-\d{2,4})\b`)
	// ISO YYYY-MM-DD
	dateISOPattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

	// Canonical wire format: the only one normalized. Everything else passes
	// through unchanged; general date-format inference is a non-goal.
	dateCanonical = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// IsDateShaped reports whether the token looks like a transaction date.
func IsDateShaped(token string) bool {
	return dateSlashPattern.MatchString(token) ||
		dateTextPattern.MatchString(token) ||
		dateDashPattern.MatchString(token) ||
		dateISOPattern.MatchString(token)
}

// FindDate returns the first date token on the line, or "".
func FindDate(line string) string {
	if m := dateSlashPattern.FindString(line); m != "" {
		return m
	}
	if m := dateISOPattern.FindString(line); m != "" {
		return m
	}
	if m := dateDashPattern.FindString(line); m != "" {
		return m
	}
	if m := dateTextPattern.FindString(line); m != "" {
		return m
	}
	return ""
}

// NormalizeDate reformats a DD/MM/YYYY date to YYYY-MM-DD. Any other shape
// is returned unchanged: unrecognized formats are a documented ambiguity the
// pipeline passes through rather than guessing at.
func NormalizeDate(raw string) string {
	m := dateCanonical.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	t, err := time.Parse("2/1/2006", raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}
