package dto

import (
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// ParseStatementRequest carries one uploaded document into the pipeline.
// Transport (multipart handling, size limits) is the caller's problem; by the
// time a request reaches the core it is just bytes plus a declared type.
type ParseStatementRequest struct {
	UserID    string           `json:"userID" validate:"required"`
	Filename  string           `json:"filename" validate:"required"`
	MediaType domain.MediaType `json:"mediaType" validate:"required,oneof=application/pdf text/csv text/plain"`
	Data      []byte           `json:"data" validate:"required"`
}

// IngestStatementResponse reports a persisted ingestion run.
type IngestStatementResponse struct {
	Upload domain.Upload      `json:"upload"`
	Result domain.ParseResult `json:"result"`
}
