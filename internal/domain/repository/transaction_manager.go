package repository

import "context"

// TransactionManager runs relational work inside a single database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repo ReferenceRepository) error) error
}
