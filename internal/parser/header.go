package parser

import (
	"strings"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// Lines shorter than this are noise (page numbers, stray glyphs) and are
// never considered header candidates.
const minHeaderLineLen = 10

var dateVocab = []string{"date", "day"}

// moneyVocab are the column words that mark a money-direction column.
// "Money in"/"paid in"/"credit" map to the IN column, the rest to OUT.
var moneyInVocab = []string{"money in", "paid in", "credit", "deposit"}
var moneyOutVocab = []string{"money out", "paid out", "debit", "withdrawal"}

var descVocab = []string{"description", "details", "narrative", "transaction", "payment type"}

// DetectHeader scans lines top to bottom for a tabular header row. A line is
// a candidate when date vocabulary co-occurs with money vocabulary; a
// candidate is accepted only if splitting it on whitespace runs yields at
// least three columns and both a date column and one money-direction column
// map by keyword. The first accepted line wins and scanning stops.
//
// Not finding a header is a normal outcome, reported as Found=false; it
// routes extraction to the pattern-based fallback strategies.
func DetectHeader(lines []RawLine) domain.HeaderInfo {
	for _, line := range lines {
		if len(line.Text) < minHeaderLineLen {
			continue
		}
		lower := strings.ToLower(line.Text)
		if !containsAny(lower, dateVocab) {
			continue
		}
		if !containsAny(lower, moneyInVocab) && !containsAny(lower, moneyOutVocab) {
			continue
		}

		info := mapHeaderColumns(line)
		if info.Found {
			return info
		}
	}
	return notFoundHeader()
}

// DetectHeaderStrict is the table-reconstruction variant: the header must
// name a date column, a description column, and a matched money pair
// (in/out, credit/debit or paid in/paid out).
func DetectHeaderStrict(lines []RawLine) domain.HeaderInfo {
	for _, line := range lines {
		if len(line.Text) < minHeaderLineLen {
			continue
		}
		lower := strings.ToLower(line.Text)
		if !containsAny(lower, dateVocab) || !containsAny(lower, descVocab) {
			continue
		}
		pair := (strings.Contains(lower, "money in") && strings.Contains(lower, "money out")) ||
			(strings.Contains(lower, "credit") && strings.Contains(lower, "debit")) ||
			(strings.Contains(lower, "paid in") && strings.Contains(lower, "paid out"))
		if !pair {
			continue
		}

		info := mapHeaderColumns(line)
		if info.Found {
			return info
		}
	}
	return notFoundHeader()
}

// mapHeaderColumns splits a candidate line into columns and maps each column
// to a role by keyword. Acceptance needs >=3 columns, a date column, and at
// least one money-direction column.
func mapHeaderColumns(line RawLine) domain.HeaderInfo {
	cols := splitColumns(line.Text)
	if len(cols) < 3 {
		return notFoundHeader()
	}

	info := notFoundHeader()
	info.LineIndex = line.Index
	for i, col := range cols {
		lower := strings.ToLower(col)
		switch {
		case info.DateCol < 0 && containsAny(lower, dateVocab):
			info.DateCol = i
		case info.MoneyInCol < 0 && containsAny(lower, moneyInVocab):
			info.MoneyInCol = i
		case info.MoneyOutCol < 0 && containsAny(lower, moneyOutVocab):
			info.MoneyOutCol = i
		case info.BalanceCol < 0 && strings.Contains(lower, "balance"):
			info.BalanceCol = i
		case info.DescCol < 0 && containsAny(lower, descVocab):
			info.DescCol = i
		}
	}

	if info.DateCol >= 0 && (info.MoneyInCol >= 0 || info.MoneyOutCol >= 0) {
		info.Found = true
	}
	return info
}

func notFoundHeader() domain.HeaderInfo {
	return domain.HeaderInfo{
		Found:       false,
		LineIndex:   -1,
		DateCol:     -1,
		DescCol:     -1,
		MoneyInCol:  -1,
		MoneyOutCol: -1,
		BalanceCol:  -1,
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
