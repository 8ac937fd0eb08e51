package repository

import (
	"context"
	"fmt"

	"flight-server/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDocumentRepository implements the DocumentRepository interface
type MongoDocumentRepository struct {
	db *mongo.Database
}

// NewMongoDocumentRepository creates a new MongoDB document repository
func NewMongoDocumentRepository(db *mongo.Database) repository.DocumentRepository {
	return &MongoDocumentRepository{
		db: db,
	}
}

// Count returns the number of documents in a collection
func (r *MongoDocumentRepository) Count(ctx context.Context, collection string) (int64, error) {
	count, err := r.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return count, nil
}

// InsertMany inserts documents into a collection and returns how many were written
func (r *MongoDocumentRepository) InsertMany(ctx context.Context, collection string, documents []interface{}) (int, error) {
	if len(documents) == 0 {
		return 0, nil
	}

	result, err := r.db.Collection(collection).InsertMany(ctx, documents)
	if mongo.IsDuplicateKeyError(err) {
		return 0, fmt.Errorf("failed to insert into %s: %w: %w", collection, repository.ErrDuplicateDocument, err)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return len(result.InsertedIDs), nil
}

// DeleteByIDs removes the documents with the given _id values
func (r *MongoDocumentRepository) DeleteByIDs(ctx context.Context, collection string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.db.Collection(collection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	return result.DeletedCount, nil
}
