package repository

import (
	"context"

	"flight-server/internal/domain/entity"
)

// ReferenceRepository defines the relational store operations for reference data
type ReferenceRepository interface {
	CountAirports(ctx context.Context) (int64, error)
	CreateAirports(ctx context.Context, airports []entity.Airport) (int64, error)
	CountAircrafts(ctx context.Context) (int64, error)
	CreateAircrafts(ctx context.Context, aircrafts []entity.Aircraft) (int64, error)
	CountFlights(ctx context.Context) (int64, error)
	CreateFlights(ctx context.Context, flights []entity.Flight) (int64, error)
	CountSeats(ctx context.Context) (int64, error)
	CreateSeats(ctx context.Context, seats []entity.Seat) (int64, error)
}
