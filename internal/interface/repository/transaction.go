package repository

import (
	"context"

	"flight-server/internal/domain/repository"

	"gorm.io/gorm"
)

// GormTransactionManager implements the TransactionManager interface
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GORM transaction manager
func NewGormTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &GormTransactionManager{
		db: db,
	}
}

// Execute runs fn with a reference repository bound to a single transaction.
// GORM rolls back when fn returns an error or panics.
func (m *GormTransactionManager) Execute(ctx context.Context, fn func(repo repository.ReferenceRepository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormReferenceRepository(tx))
	})
}
