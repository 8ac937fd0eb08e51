package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flight statuses
const (
	FlightStatusFlying    = "Flying"
	FlightStatusDelay     = "Delay"
	FlightStatusCanceled  = "Canceled"
	FlightStatusCompleted = "Completed"
)

// Flight represents a scheduled flight between two airports
type Flight struct {
	ID                 uuid.UUID
	FlightNumber       string
	AircraftID         uuid.UUID
	DepartureAirportID uuid.UUID
	DepartureDate      time.Time
	ArriveDate         time.Time
	ArriveAirportID    uuid.UUID
	DurationMinutes    float64
	FlightDate         time.Time
	Status             string
	Price              float64
	CreatedAt          time.Time
}
