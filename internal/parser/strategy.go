package parser

import (
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// Strategy is one extraction approach: a pure function from segmented lines
// (plus the detected header, if any) to candidate transactions. Strategies
// never fail; an approach that finds nothing returns an empty slice.
type Strategy interface {
	Name() string
	Extract(lines []RawLine, header domain.HeaderInfo) []domain.CandidateTransaction
}

// DefaultChain returns the extraction strategies in strict priority order:
// structured-column, section-scoped, table-reconstruction, then the
// last-resort money-pattern scan. Order encodes trust: earlier strategies
// read the document's own structure, later ones guess from position.
func DefaultChain() []Strategy {
	return []Strategy{
		structuredColumnStrategy{},
		sectionScopedStrategy{},
		tableReconstructionStrategy{},
		moneyPatternStrategy{},
	}
}

// ExtractTransactions runs the strategy chain and stops at the first strategy
// that yields a non-empty result. It returns the candidates and the name of
// the winning strategy ("" when every strategy came up empty).
func ExtractTransactions(lines []RawLine, header domain.HeaderInfo) ([]domain.CandidateTransaction, string) {
	for _, s := range DefaultChain() {
		if candidates := s.Extract(lines, header); len(candidates) > 0 {
			return candidates, s.Name()
		}
	}
	return nil, ""
}
