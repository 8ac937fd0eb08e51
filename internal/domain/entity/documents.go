package entity

import (
	"time"
)

// Document collection names
const (
	CollectionAirports  = "airports"
	CollectionAircrafts = "aircrafts"
	CollectionFlights   = "flights"
	CollectionSeats     = "seats"
)

// AirportDocument is the document store mirror of an Airport
type AirportDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Address   string    `bson:"address"`
	Code      string    `bson:"code"`
	CreatedAt time.Time `bson:"createdAt"`
}

// AircraftDocument is the document store mirror of an Aircraft
type AircraftDocument struct {
	ID                string    `bson:"_id"`
	Name              string    `bson:"name"`
	Model             string    `bson:"model"`
	ManufacturingYear int       `bson:"manufacturingYear"`
	CreatedAt         time.Time `bson:"createdAt"`
}

// FlightDocument is the document store mirror of a Flight
type FlightDocument struct {
	ID                 string    `bson:"_id"`
	FlightNumber       string    `bson:"flightNumber"`
	AircraftID         string    `bson:"aircraftId"`
	DepartureAirportID string    `bson:"departureAirportId"`
	DepartureDate      time.Time `bson:"departureDate"`
	ArriveDate         time.Time `bson:"arriveDate"`
	ArriveAirportID    string    `bson:"arriveAirportId"`
	DurationMinutes    float64   `bson:"durationMinutes"`
	FlightDate         time.Time `bson:"flightDate"`
	Status             string    `bson:"status"`
	Price              float64   `bson:"price"`
	CreatedAt          time.Time `bson:"createdAt"`
}

// SeatDocument is the document store mirror of a Seat
type SeatDocument struct {
	ID         string    `bson:"_id"`
	SeatNumber string    `bson:"seatNumber"`
	Type       string    `bson:"type"`
	Class      string    `bson:"class"`
	FlightID   string    `bson:"flightId"`
	CreatedAt  time.Time `bson:"createdAt"`
}
