package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerlift/ledgerlift/internal/apperrors"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
	"github.com/ledgerlift/ledgerlift/internal/models"
	"github.com/ledgerlift/ledgerlift/internal/utils/mapping"
)

const uploadColumns = `
	upload_id, user_id, filename, media_type, transaction_count, uploaded_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxUploadRepository struct {
	BaseRepository
}

// newPgxUploadRepository creates a new repository for upload records.
func newPgxUploadRepository(pool *pgxpool.Pool) portsrepo.UploadRepository {
	return &PgxUploadRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxUploadRepository implements portsrepo.UploadRepository
var _ portsrepo.UploadRepository = (*PgxUploadRepository)(nil)

// SaveUpload inserts a new upload record.
func (r *PgxUploadRepository) SaveUpload(ctx context.Context, upload domain.Upload) error {
	m := mapping.ToModelUpload(upload)

	query := `
		INSERT INTO uploads (` + uploadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UploadID,
		m.UserID,
		m.Filename,
		m.MediaType,
		m.TransactionCount,
		m.UploadedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: upload with ID %s already exists", apperrors.ErrDuplicate, m.UploadID)
		}
		return fmt.Errorf("failed to save upload %s: %w", m.UploadID, err)
	}
	return nil
}

// FindUploadByID retrieves one upload owned by the user.
func (r *PgxUploadRepository) FindUploadByID(ctx context.Context, userID, uploadID string) (*domain.Upload, error) {
	query := `
		SELECT ` + uploadColumns + `
		FROM uploads
		WHERE user_id = $1 AND upload_id = $2;
	`
	row := r.Pool.QueryRow(ctx, query, userID, uploadID)
	m, err := scanUpload(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: upload %s", apperrors.ErrNotFound, uploadID)
		}
		return nil, fmt.Errorf("failed to find upload %s: %w", uploadID, err)
	}
	d := mapping.ToDomainUpload(m)
	return &d, nil
}

// ListUploadsByUser retrieves a user's uploads, newest first.
func (r *PgxUploadRepository) ListUploadsByUser(ctx context.Context, userID string) ([]domain.Upload, error) {
	query := `
		SELECT ` + uploadColumns + `
		FROM uploads
		WHERE user_id = $1
		ORDER BY uploaded_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads for user %s: %w", userID, err)
	}
	defer rows.Close()

	var out []models.Upload
	for rows.Next() {
		m, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating upload rows: %w", err)
	}
	return mapping.ToDomainUploadSlice(out), nil
}

func scanUpload(row pgx.Row) (models.Upload, error) {
	var m models.Upload
	err := row.Scan(
		&m.UploadID,
		&m.UserID,
		&m.Filename,
		&m.MediaType,
		&m.TransactionCount,
		&m.UploadedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
