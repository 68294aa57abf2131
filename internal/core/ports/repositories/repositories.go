package repositories

// RepositoryProvider bundles every repository the service layer needs.
// Concrete implementations (pgsql, in-memory test doubles) fill it in.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	UploadRepo      UploadRepository
}
