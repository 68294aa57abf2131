package repositories

import (
	"context"
	"time"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// TransactionReader defines read operations for persisted transactions.
type TransactionReader interface {
	// ListTransactionsByUser retrieves a user's transactions, optionally
	// restricted to an inclusive ISO date range. Empty bounds mean unbounded.
	ListTransactionsByUser(ctx context.Context, userID string, dateFrom, dateTo string) ([]domain.Transaction, error)

	// FindTransactionByID retrieves one transaction owned by the user.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for persisted transactions.
type TransactionWriter interface {
	// SaveTransactions persists a batch of transactions from one parse run.
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error

	// UpdateTransactionCode sets the account code on one transaction.
	UpdateTransactionCode(ctx context.Context, userID, transactionID, accountCode string, confidence domain.Confidence, codedAt time.Time) error
}

// TransactionRepository combines transaction persistence operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
