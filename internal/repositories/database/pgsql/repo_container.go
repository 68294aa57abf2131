package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerlift/ledgerlift/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UploadRepo:      newPgxUploadRepository(dbPool),
	}
}
