// Package mapper converts relational reference records into their document store form.
package mapper

import (
	"errors"
	"fmt"

	"flight-server/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIncompleteRecord is returned when a record is missing a field its document requires
var ErrIncompleteRecord = errors.New("incomplete record")

func incomplete(kind, field string) error {
	return fmt.Errorf("%w: %s has no %s", ErrIncompleteRecord, kind, field)
}

// ToAirportDocument maps an airport to its document
func ToAirportDocument(a entity.Airport) (entity.AirportDocument, error) {
	if a.ID == uuid.Nil {
		return entity.AirportDocument{}, incomplete("airport", "id")
	}
	if a.Code == "" {
		return entity.AirportDocument{}, incomplete("airport", "code")
	}

	return entity.AirportDocument{
		ID:        a.ID.String(),
		Name:      a.Name,
		Address:   a.Address,
		Code:      a.Code,
		CreatedAt: a.CreatedAt,
	}, nil
}

// ToAircraftDocument maps an aircraft to its document
func ToAircraftDocument(a entity.Aircraft) (entity.AircraftDocument, error) {
	if a.ID == uuid.Nil {
		return entity.AircraftDocument{}, incomplete("aircraft", "id")
	}
	if a.Model == "" {
		return entity.AircraftDocument{}, incomplete("aircraft", "model")
	}

	return entity.AircraftDocument{
		ID:                a.ID.String(),
		Name:              a.Name,
		Model:             a.Model,
		ManufacturingYear: a.ManufacturingYear,
		CreatedAt:         a.CreatedAt,
	}, nil
}

// ToFlightDocument maps a flight to its document
func ToFlightDocument(f entity.Flight) (entity.FlightDocument, error) {
	switch {
	case f.ID == uuid.Nil:
		return entity.FlightDocument{}, incomplete("flight", "id")
	case f.FlightNumber == "":
		return entity.FlightDocument{}, incomplete("flight", "flight number")
	case f.AircraftID == uuid.Nil:
		return entity.FlightDocument{}, incomplete("flight", "aircraft id")
	case f.DepartureAirportID == uuid.Nil:
		return entity.FlightDocument{}, incomplete("flight", "departure airport id")
	case f.ArriveAirportID == uuid.Nil:
		return entity.FlightDocument{}, incomplete("flight", "arrive airport id")
	}

	return entity.FlightDocument{
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
	}, nil
}

// ToSeatDocument maps a seat to its document
func ToSeatDocument(s entity.Seat) (entity.SeatDocument, error) {
	switch {
	case s.ID == uuid.Nil:
		return entity.SeatDocument{}, incomplete("seat", "id")
	case s.SeatNumber == "":
		return entity.SeatDocument{}, incomplete("seat", "seat number")
	case s.FlightID == uuid.Nil:
		return entity.SeatDocument{}, incomplete("seat", "flight id")
	}

	return entity.SeatDocument{
		ID:         s.ID.String(),
		SeatNumber: s.SeatNumber,
		Type:       s.Type,
		Class:      s.Class,
		FlightID:   s.FlightID.String(),
		CreatedAt:  s.CreatedAt,
	}, nil
}
