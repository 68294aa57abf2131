// Package parser turns raw statement text into candidate transactions.
// It is pure in-memory computation: no I/O, no clocks, no shared state, so
// independent pipeline runs can use it concurrently.
package parser

import "strings"

// RawLine is a single trimmed line of extracted text together with its line
// index in the source document. The index gaps left by dropped blank lines
// are meaningful: the section-scoped strategy uses them to find section ends.
type RawLine struct {
	Index int
	Text  string
}

// SegmentLines splits raw extracted document text into ordered, non-empty,
// trimmed lines. Blank lines are dropped but their positions remain visible
// through the Index field.
func SegmentLines(text string) []RawLine {
	rawLines := strings.Split(text, "\n")
	lines := make([]RawLine, 0, len(rawLines))
	for i, l := range rawLines {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		lines = append(lines, RawLine{Index: i, Text: trimmed})
	}
	return lines
}

// splitColumns splits a line into columns on runs of two or more whitespace
// characters. This is the layout-preserving heuristic used by fixed-width
// text extraction: single spaces stay inside a column ("Money In"), wider
// gaps separate columns.
func splitColumns(line string) []string {
	var cols []string
	var cur strings.Builder
	spaceRun := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			spaceRun++
			if r == '\t' {
				spaceRun = 2 // a tab always separates columns
			}
			continue
		}
		if spaceRun >= 2 && cur.Len() > 0 {
			cols = append(cols, cur.String())
			cur.Reset()
		} else if spaceRun == 1 && cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		spaceRun = 0
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		cols = append(cols, cur.String())
	}
	return cols
}
