package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations obtained from the
	// factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// JobRepo returns a JobRepository bound to the current transaction.
	JobRepo() JobRepository

	// QuoteRepo returns a QuoteRepository bound to the current transaction.
	QuoteRepo() QuoteRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}
