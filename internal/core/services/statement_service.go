package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ledgerlift/ledgerlift/internal/apperrors"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
	portssvc "github.com/ledgerlift/ledgerlift/internal/core/ports/services"
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/ledgerlift/ledgerlift/internal/extractor"
	"github.com/ledgerlift/ledgerlift/internal/parser"
	"github.com/ledgerlift/ledgerlift/internal/platform/metrics"
)

// statementService runs the statement pipeline: extract text, segment into
// lines, detect a header, run the strategy chain, dedupe, then categorize and
// auto-code. All in memory; persistence only happens in IngestStatement.
type statementService struct {
	BaseService
	coder           portssvc.AutoCoderSvc
	txnRepo         portsrepo.TransactionRepository
	uploadRepo      portsrepo.UploadRepository
	validate        *validator.Validate
	defaultCurrency string
	parseTimeout    time.Duration
	now             func() time.Time
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithParseTimeout caps the wall-clock time of a single parse run.
func WithParseTimeout(d time.Duration) StatementServiceOption {
	return func(s *statementService) {
		s.parseTimeout = d
	}
}

// WithDefaultCurrency sets the currency assumed when no symbol was detected.
func WithDefaultCurrency(code string) StatementServiceOption {
	return func(s *statementService) {
		s.defaultCurrency = code
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) StatementServiceOption {
	return func(s *statementService) {
		s.now = now
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(coder portssvc.AutoCoderSvc, txnRepo portsrepo.TransactionRepository, uploadRepo portsrepo.UploadRepository, options ...StatementServiceOption) portssvc.StatementSvcFacade {
	svc := &statementService{
		coder:           coder,
		txnRepo:         txnRepo,
		uploadRepo:      uploadRepo,
		validate:        validator.New(),
		defaultCurrency: "GBP",
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure statementService implements the StatementSvcFacade interface
var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// ParseStatement runs the full pipeline over one document. Documents that
// yield no transactions return Success=false with a diagnostic, not an error;
// the error return is reserved for invalid requests and deadline expiry.
func (s *statementService) ParseStatement(ctx context.Context, req dto.ParseStatementRequest) (domain.ParseResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.ParseResult{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if s.parseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.parseTimeout)
		defer cancel()
	}

	text, err := extractor.ExtractText(req.Data, req.MediaType)
	if err != nil {
		if timeoutErr := s.checkDeadline(ctx, req.Filename); timeoutErr != nil {
			return domain.ParseResult{}, timeoutErr
		}
		s.LogError(ctx, err, "Text extraction failed",
			slog.String("filename", req.Filename),
			slog.String("media_type", string(req.MediaType)))
		metrics.ParseRuns.WithLabelValues("extraction_error").Inc()
		return domain.ParseResult{
			Success: false,
			Error:   fmt.Sprintf("%s: %s", apperrors.ErrExtractionFailed.Error(), err.Error()),
		}, nil
	}

	lines := parser.SegmentLines(text)
	header := parser.DetectHeader(lines)
	candidates, strategy := parser.ExtractTransactions(lines, header)

	if timeoutErr := s.checkDeadline(ctx, req.Filename); timeoutErr != nil {
		return domain.ParseResult{}, timeoutErr
	}

	deduped := parser.Dedupe(candidates)
	if dropped := len(candidates) - len(deduped); dropped > 0 {
		metrics.DuplicatesDropped.Add(float64(dropped))
		s.LogDebug(ctx, "Dropped duplicate candidates",
			slog.String("filename", req.Filename),
			slog.Int("dropped", dropped))
	}

	accountInfo := parser.ExtractAccountInfo(text)

	transactions := make([]domain.Transaction, 0, len(deduped))
	for _, c := range deduped {
		transactions = append(transactions, s.buildTransaction(req.UserID, c))
	}

	if len(transactions) == 0 {
		s.LogInfo(ctx, "Parse run found no transactions",
			slog.String("filename", req.Filename),
			slog.Bool("header_found", header.Found))
		metrics.ParseRuns.WithLabelValues("empty").Inc()
		return domain.ParseResult{
			Success:     false,
			AccountInfo: accountInfo,
			Error:       "no transactions found in document",
		}, nil
	}

	metrics.ParseRuns.WithLabelValues("success").Inc()
	metrics.TransactionsExtracted.WithLabelValues(strategy).Add(float64(len(transactions)))
	s.LogInfo(ctx, "Statement parsed",
		slog.String("filename", req.Filename),
		slog.String("strategy", strategy),
		slog.Int("transaction_count", len(transactions)),
		slog.Bool("header_found", header.Found))

	return domain.ParseResult{
		Success:      true,
		Transactions: transactions,
		AccountInfo:  accountInfo,
	}, nil
}

// IngestStatement parses and persists the result: one upload record plus its
// transactions. A run that found nothing still records the upload so the user
// can see the attempt.
func (s *statementService) IngestStatement(ctx context.Context, req dto.ParseStatementRequest) (*dto.IngestStatementResponse, error) {
	result, err := s.ParseStatement(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	upload := domain.Upload{
		UploadID:         uuid.NewString(),
		UserID:           req.UserID,
		Filename:         req.Filename,
		MediaType:        req.MediaType,
		TransactionCount: len(result.Transactions),
		UploadedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: req.UserID,
		},
	}

	if err := s.uploadRepo.SaveUpload(ctx, upload); err != nil {
		s.LogError(ctx, err, "Failed to save upload record",
			slog.String("upload_id", upload.UploadID),
			slog.String("filename", req.Filename))
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	for i := range result.Transactions {
		result.Transactions[i].UploadID = upload.UploadID
	}

	if len(result.Transactions) > 0 {
		if err := s.txnRepo.SaveTransactions(ctx, result.Transactions); err != nil {
			s.LogError(ctx, err, "Failed to save transactions",
				slog.String("upload_id", upload.UploadID),
				slog.Int("transaction_count", len(result.Transactions)))
			return nil, fmt.Errorf("failed to save transactions: %w", err)
		}
	}

	s.LogInfo(ctx, "Statement ingested",
		slog.String("upload_id", upload.UploadID),
		slog.Int("transaction_count", len(result.Transactions)))

	return &dto.IngestStatementResponse{Upload: upload, Result: result}, nil
}

// buildTransaction finalizes one candidate: normalize the date, fill the
// currency default, and auto-code it against the chart.
func (s *statementService) buildTransaction(userID string, c domain.CandidateTransaction) domain.Transaction {
	c.Date = parser.NormalizeDate(c.Date)
	if c.Currency == "" {
		c.Currency = s.defaultCurrency
	}
	if c.Category == "" {
		c.Category = parser.Categorize(c.Description)
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		UserID:               userID,
		CandidateTransaction: c,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if s.coder != nil {
		// Catch-all assignments stay visibly low confidence.
		txn.AccountCode, txn.CodingConfidence = s.coder.AutoCodeWithConfidence(c.Description, c.Amount, c.IsIncome())
		txn.CodedAt = now
		metrics.TransactionsCoded.WithLabelValues("auto").Inc()
	}
	return txn
}

// checkDeadline converts context expiry into ErrTimeout so callers can tell a
// cancelled run apart from one that finished empty.
func (s *statementService) checkDeadline(ctx context.Context, filename string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		metrics.ParseRuns.WithLabelValues("timeout").Inc()
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return fmt.Errorf("%w: parsing %s exceeded the deadline", apperrors.ErrTimeout, filename)
		}
		return fmt.Errorf("%w: parsing %s was cancelled", apperrors.ErrTimeout, filename)
	}
	return nil
}
