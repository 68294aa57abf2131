package repositories

import (
	"context"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// UploadRepository persists statement upload records.
type UploadRepository interface {
	// SaveUpload persists a new upload record.
	SaveUpload(ctx context.Context, upload domain.Upload) error

	// FindUploadByID retrieves one upload owned by the user.
	FindUploadByID(ctx context.Context, userID, uploadID string) (*domain.Upload, error)

	// ListUploadsByUser retrieves a user's uploads, newest first.
	ListUploadsByUser(ctx context.Context, userID string) ([]domain.Upload, error)
}
