package services

import (
	"context"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/ledgerlift/ledgerlift/internal/dto"
)

// StatementParserSvc runs the in-memory statement pipeline: extract text,
// segment, run the strategy chain, dedupe, categorize and auto-code.
//
// Parsing is total over document content: a document that yields nothing
// comes back as ParseResult{Success: false}, not an error. The error return
// is reserved for request validation and for the caller's deadline expiring
// (apperrors.ErrTimeout), which must stay distinguishable from "finished
// with no data".
type StatementParserSvc interface {
	ParseStatement(ctx context.Context, req dto.ParseStatementRequest) (domain.ParseResult, error)
}

// StatementIngestSvc parses and persists: the parse result's transactions are
// stored along with an upload record via the repository ports.
type StatementIngestSvc interface {
	IngestStatement(ctx context.Context, req dto.ParseStatementRequest) (*dto.IngestStatementResponse, error)
}

// StatementSvcFacade combines statement pipeline operations.
type StatementSvcFacade interface {
	StatementParserSvc
	StatementIngestSvc
}
