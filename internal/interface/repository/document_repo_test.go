package repository

import (
	"context"
	"testing"

	"flight-server/internal/domain/entity"
	domainrepo "flight-server/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoDocumentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("count returns n", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "flight.airports", mtest.FirstBatch, bson.D{
			{Key: "n", Value: int32(2)},
		}))

		n, err := repo.Count(context.Background(), entity.CollectionAirports)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})

	mt.Run("count on empty collection", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "flight.seats", mtest.FirstBatch))

		n, err := repo.Count(context.Background(), entity.CollectionSeats)
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})

	mt.Run("insert many", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		docs := []interface{}{
			entity.AircraftDocument{ID: "a", Model: "B737"},
			entity.AircraftDocument{ID: "b", Model: "A300"},
		}
		n, err := repo.InsertMany(context.Background(), entity.CollectionAircrafts, docs)
		require.NoError(mt, err)
		assert.Equal(mt, 2, n)
	})

	mt.Run("insert many duplicate key", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.InsertMany(context.Background(), entity.CollectionFlights, []interface{}{
			entity.FlightDocument{ID: "f"},
		})
		assert.ErrorIs(mt, err, domainrepo.ErrDuplicateDocument)
	})

	mt.Run("insert many other write error", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "document failed validation",
		}))

		_, err := repo.InsertMany(context.Background(), entity.CollectionFlights, []interface{}{
			entity.FlightDocument{ID: "f"},
		})
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domainrepo.ErrDuplicateDocument)
	})

	mt.Run("insert nothing", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository(mt.DB)

		n, err := repo.InsertMany(context.Background(), entity.CollectionFlights, nil)
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})

	mt.Run("delete by ids", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(2)}))

		n, err := repo.DeleteByIDs(context.Background(), entity.CollectionAirports, []string{"a", "b"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})
}
