package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerlift/ledgerlift/internal/apperrors"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
	"github.com/ledgerlift/ledgerlift/internal/models"
	"github.com/ledgerlift/ledgerlift/internal/utils/mapping"
)

const transactionColumns = `
	transaction_id, upload_id, user_id, txn_date, description, amount,
	direction, currency, category, confidence, strategy,
	account_code, coding_confidence, coded_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransactions inserts a batch of transactions atomically. One duplicate
// fails the whole batch so a re-ingested statement never half-lands.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		_, err := tx.Exec(ctx, query,
			m.TransactionID,
			m.UploadID,
			m.UserID,
			m.TxnDate,
			m.Description,
			m.Amount,
			m.Direction,
			m.Currency,
			m.Category,
			m.Confidence,
			m.Strategy,
			nullIfEmpty(m.AccountCode),
			nullIfEmpty(m.CodingConfidence),
			m.CodedAt,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			}
			return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListTransactionsByUser retrieves a user's transactions, optionally bounded
// by an inclusive ISO date range. Date bounds compare lexically, which is
// correct for YYYY-MM-DD and deliberately excludes dates that never
// normalized.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, dateFrom, dateTo string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
	`
	args := []any{userID}
	if dateFrom != "" {
		args = append(args, dateFrom)
		query += fmt.Sprintf(" AND txn_date >= $%d", len(args))
	}
	if dateTo != "" {
		args = append(args, dateTo)
		query += fmt.Sprintf(" AND txn_date <= $%d", len(args))
	}
	query += " ORDER BY txn_date, created_at;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(out), nil
}

// FindTransactionByID retrieves one transaction owned by the user.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND transaction_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
		}
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	m, err := scanTransaction(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// UpdateTransactionCode sets the account code on one transaction. The user
// scope lives in the WHERE clause, so a foreign transaction reads as not found.
func (r *PgxTransactionRepository) UpdateTransactionCode(ctx context.Context, userID, transactionID, accountCode string, confidence domain.Confidence, codedAt time.Time) error {
	query := `
		UPDATE transactions
		SET account_code = $1, coding_confidence = $2, coded_at = $3,
		    last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $4 AND transaction_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, accountCode, string(confidence), codedAt, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to update code on transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// scanTransaction reads one row into the model, unwrapping nullable columns.
func scanTransaction(rows pgx.Rows) (models.Transaction, error) {
	var m models.Transaction
	var accountCode, codingConfidence sql.NullString
	var codedAt sql.NullTime
	err := rows.Scan(
		&m.TransactionID,
		&m.UploadID,
		&m.UserID,
		&m.TxnDate,
		&m.Description,
		&m.Amount,
		&m.Direction,
		&m.Currency,
		&m.Category,
		&m.Confidence,
		&m.Strategy,
		&accountCode,
		&codingConfidence,
		&codedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	m.AccountCode = accountCode.String
	m.CodingConfidence = codingConfidence.String
	if codedAt.Valid {
		t := codedAt.Time
		m.CodedAt = &t
	}
	return m, nil
}

// nullIfEmpty maps an empty string to SQL NULL.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
