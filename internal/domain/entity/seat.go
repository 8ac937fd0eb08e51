package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seat types
const (
	SeatTypeWindow = "Window"
	SeatTypeMiddle = "Middle"
	SeatTypeAisle  = "Aisle"
)

// Seat classes
const (
	SeatClassFirstClass = "FirstClass"
	SeatClassBusiness   = "Business"
	SeatClassEconomy    = "Economy"
)

// Seat represents a seat on a flight
type Seat struct {
	ID         uuid.UUID
	SeatNumber string
	Type       string
	Class      string
	FlightID   uuid.UUID
	CreatedAt  time.Time
}
