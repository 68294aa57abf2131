package parser

import (
	"strings"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// terminatorVocab ends table reading: summary and pagination rows that trail
// a transaction table.
var terminatorVocab = []string{"total", "balance", "page"}

// tableReconstructionStrategy re-attempts header discovery with a stricter
// keyword set and reads the table under it, stopping early at summary or
// pagination lines. It exists for documents whose loose header scan mapped
// nothing useful but that still carry a real table.
type tableReconstructionStrategy struct{}

func (tableReconstructionStrategy) Name() string { return "table-reconstruction" }

func (s tableReconstructionStrategy) Extract(lines []RawLine, _ domain.HeaderInfo) []domain.CandidateTransaction {
	header := DetectHeaderStrict(lines)
	if !header.Found {
		return nil
	}

	var out []domain.CandidateTransaction
	for _, line := range lines {
		if line.Index <= header.LineIndex {
			continue
		}
		if isTerminatorLine(line.Text) {
			break
		}
		if c, ok := extractColumnRow(line.Text, header, domain.ConfidenceHigh, "table-reconstruction"); ok {
			out = append(out, c)
		}
	}
	return out
}

func isTerminatorLine(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, terminatorVocab)
}
