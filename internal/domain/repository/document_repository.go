package repository

import (
	"context"
	"errors"
)

// ErrDuplicateDocument is returned when an insert hits documents that already exist
var ErrDuplicateDocument = errors.New("duplicate document")

// DocumentRepository defines the document store operations used to mirror reference data
type DocumentRepository interface {
	Count(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, documents []interface{}) (int, error)
	DeleteByIDs(ctx context.Context, collection string, ids []string) (int64, error)
}
