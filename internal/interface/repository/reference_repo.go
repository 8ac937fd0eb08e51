package repository

import (
	"context"
	"time"

	"flight-server/internal/domain/entity"
	"flight-server/internal/domain/repository"

	"gorm.io/gorm"
)

// GormReferenceRepository implements the ReferenceRepository interface
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new GORM reference data repository
func NewGormReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &GormReferenceRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Name      string    `gorm:"column:name"`
	Address   string    `gorm:"column:address"`
	Code      string    `gorm:"column:code;unique"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

// Aircrafts GORM model for database mapping
type Aircrafts struct {
	ID                string    `gorm:"column:id;primaryKey;type:uuid"`
	Name              string    `gorm:"column:name"`
	Model             string    `gorm:"column:model"`
	ManufacturingYear int       `gorm:"column:manufacturing_year"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name
func (Aircrafts) TableName() string {
	return "aircrafts"
}

// Flights GORM model for database mapping
type Flights struct {
	ID                 string    `gorm:"column:id;primaryKey;type:uuid"`
	FlightNumber       string    `gorm:"column:flight_number"`
	AircraftID         string    `gorm:"column:aircraft_id;type:uuid"`
	DepartureAirportID string    `gorm:"column:departure_airport_id;type:uuid"`
	DepartureDate      time.Time `gorm:"column:departure_date"`
	ArriveDate         time.Time `gorm:"column:arrive_date"`
	ArriveAirportID    string    `gorm:"column:arrive_airport_id;type:uuid"`
	DurationMinutes    float64   `gorm:"column:duration_minutes"`
	FlightDate         time.Time `gorm:"column:flight_date"`
	Status             string    `gorm:"column:status"`
	Price              float64   `gorm:"column:price"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

// Seats GORM model for database mapping
type Seats struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid"`
	SeatNumber string    `gorm:"column:seat_number"`
	Type       string    `gorm:"column:type"`
	Class      string    `gorm:"column:class"`
	FlightID   string    `gorm:"column:flight_id;type:uuid"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name
func (Seats) TableName() string {
	return "seats"
}

func (r *GormReferenceRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(model).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *GormReferenceRepository) create(ctx context.Context, models interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountAirports returns the number of airport rows
func (r *GormReferenceRepository) CountAirports(ctx context.Context) (int64, error) {
	return r.count(ctx, &Airports{})
}

// CreateAirports inserts all given airports
func (r *GormReferenceRepository) CreateAirports(ctx context.Context, airports []entity.Airport) (int64, error) {
	if len(airports) == 0 {
		return 0, nil
	}

	models := make([]Airports, 0, len(airports))
	for _, a := range airports {
		models = append(models, Airports{
			ID:        a.ID.String(),
			Name:      a.Name,
			Address:   a.Address,
			Code:      a.Code,
			CreatedAt: a.CreatedAt,
		})
	}
	return r.create(ctx, &models)
}

// CountAircrafts returns the number of aircraft rows
func (r *GormReferenceRepository) CountAircrafts(ctx context.Context) (int64, error) {
	return r.count(ctx, &Aircrafts{})
}

// CreateAircrafts inserts all given aircraft
func (r *GormReferenceRepository) CreateAircrafts(ctx context.Context, aircrafts []entity.Aircraft) (int64, error) {
	if len(aircrafts) == 0 {
		return 0, nil
	}

	models := make([]Aircrafts, 0, len(aircrafts))
	for _, a := range aircrafts {
		models = append(models, Aircrafts{
			ID:                a.ID.String(),
			Name:              a.Name,
			Model:             a.Model,
			ManufacturingYear: a.ManufacturingYear,
			CreatedAt:         a.CreatedAt,
		})
	}
	return r.create(ctx, &models)
}

// CountFlights returns the number of flight rows
func (r *GormReferenceRepository) CountFlights(ctx context.Context) (int64, error) {
	return r.count(ctx, &Flights{})
}

// CreateFlights inserts all given flights
func (r *GormReferenceRepository) CreateFlights(ctx context.Context, flights []entity.Flight) (int64, error) {
	if len(flights) == 0 {
		return 0, nil
	}

	models := make([]Flights, 0, len(flights))
	for _, f := range flights {
		models = append(models, Flights{
			ID:                 f.ID.String(),
			FlightNumber:       f.FlightNumber,
			AircraftID:         f.AircraftID.String(),
			DepartureAirportID: f.DepartureAirportID.String(),
			DepartureDate:      f.DepartureDate,
			ArriveDate:         f.ArriveDate,
			ArriveAirportID:    f.ArriveAirportID.String(),
			DurationMinutes:    f.DurationMinutes,
			FlightDate:         f.FlightDate,
			Status:             f.Status,
			Price:              f.Price,
			CreatedAt:          f.CreatedAt,
		})
	}
	return r.create(ctx, &models)
}

// CountSeats returns the number of seat rows
func (r *GormReferenceRepository) CountSeats(ctx context.Context) (int64, error) {
	return r.count(ctx, &Seats{})
}

// CreateSeats inserts all given seats
func (r *GormReferenceRepository) CreateSeats(ctx context.Context, seats []entity.Seat) (int64, error) {
	if len(seats) == 0 {
		return 0, nil
	}

	models := make([]Seats, 0, len(seats))
	for _, s := range seats {
		models = append(models, Seats{
			ID:         s.ID.String(),
			SeatNumber: s.SeatNumber,
			Type:       s.Type,
			Class:      s.Class,
			FlightID:   s.FlightID.String(),
			CreatedAt:  s.CreatedAt,
		})
	}
	return r.create(ctx, &models)
}
