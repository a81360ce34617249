package repository

import "context"

// TransactionManager defines the interface for managing storage transactions.
// This allows the use case layer to handle transactions without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to a specific transaction.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
	NewOrderEventRepository() OrderEventRepository
	NewRoleRepository() RoleRepository
}
