package parser

import (
	"strings"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// Dedupe collapses repeated candidates produced by ambiguous line
// segmentation: overlapping heuristics can emit the same real-world
// transaction more than once. The key is (date, amount, first ten characters
// of the description); the short prefix tolerates minor formatting noise at
// the cost of being a coarse key. First occurrence wins; order is preserved.
func Dedupe(candidates []domain.CandidateTransaction) []domain.CandidateTransaction {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]domain.CandidateTransaction, 0, len(candidates))
	for _, c := range candidates {
		key := dedupeKey(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func dedupeKey(c domain.CandidateTransaction) string {
	prefix := strings.ToLower(c.Description)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return c.Date + "|" + c.Amount.String() + "|" + prefix
}
