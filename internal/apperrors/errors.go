package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrTimeout indicates that a pipeline run was cancelled by the caller's
// deadline before it finished. Distinct from a run that finished with no
// transactions.
var ErrTimeout = errors.New("processing timed out")

// ErrExtractionFailed indicates that no readable text could be pulled out of
// an uploaded document. Strategy misses are NOT this error; they surface as a
// ParseResult with Success=false.
var ErrExtractionFailed = errors.New("text extraction failed")
