// Package initialdata holds the reference records every fresh installation starts with.
package initialdata

import (
	"time"

	"flight-server/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	lisbonAirportID   = uuid.MustParse("3c5c0000-97c6-fc34-a0cb-08db322230c8")
	saoPauloAirportID = uuid.MustParse("3c5c0000-97c6-fc34-fc3c-08db322230c8")

	boeing737ID = uuid.MustParse("3c5c0000-97c6-fc34-2eb9-08db322230c9")
	airbus300ID = uuid.MustParse("3c5c0000-97c6-fc34-2e04-08db322230c9")
	airbus320ID = uuid.MustParse("3c5c0000-97c6-fc34-2e11-08db322230c9")

	flightBD467ID = uuid.MustParse("3c5c0000-97c6-fc34-fcd3-08db322230c8")
)

var airports = []entity.Airport{
	{ID: lisbonAirportID, Name: "Lisbon International Airport", Address: "LIS", Code: "12988"},
	{ID: saoPauloAirportID, Name: "Sao Paulo International Airport", Address: "BRZ", Code: "11200"},
}

var aircrafts = []entity.Aircraft{
	{ID: boeing737ID, Name: "Boeing 737", Model: "B737", ManufacturingYear: 2005},
	{ID: airbus300ID, Name: "Airbus 300", Model: "A300", ManufacturingYear: 2000},
	{ID: airbus320ID, Name: "Airbus 320", Model: "A320", ManufacturingYear: 2003},
}

var flights = []entity.Flight{
	{
		ID:                 flightBD467ID,
		FlightNumber:       "BD467",
		AircraftID:         boeing737ID,
		DepartureAirportID: lisbonAirportID,
		DepartureDate:      time.Date(2022, time.January, 31, 12, 0, 0, 0, time.UTC),
		ArriveDate:         time.Date(2022, time.January, 31, 14, 0, 0, 0, time.UTC),
		ArriveAirportID:    saoPauloAirportID,
		DurationMinutes:    120,
		FlightDate:         time.Date(2022, time.January, 31, 0, 0, 0, 0, time.UTC),
		Status:             entity.FlightStatusFlying,
		Price:              8000,
	},
}

var seats = []entity.Seat{
	{ID: uuid.MustParse("3c5c0000-97c6-fc34-fcd3-08db322230c9"), SeatNumber: "12A", Type: entity.SeatTypeWindow, Class: entity.SeatClassEconomy, FlightID: flightBD467ID},
	{ID: uuid.MustParse("3c5c0000-97c6-fc34-fcd3-08db322230ca"), SeatNumber: "12B", Type: entity.SeatTypeWindow, Class: entity.SeatClassEconomy, FlightID: flightBD467ID},
	{ID: uuid.MustParse("3c5c0000-97c6-fc34-fcd3-08db322230cb"), SeatNumber: "12C", Type: entity.SeatTypeMiddle, Class: entity.SeatClassEconomy, FlightID: flightBD467ID},
	{ID: uuid.MustParse("3c5c0000-97c6-fc34-fcd3-08db322230cc"), SeatNumber: "12D", Type: entity.SeatTypeMiddle, Class: entity.SeatClassEconomy, FlightID: flightBD467ID},
	{ID: uuid.MustParse("3c5c0000-97c6-fc34-fcd3-08db322230cd"), SeatNumber: "12E", Type: entity.SeatTypeAisle, Class: entity.SeatClassEconomy, FlightID: flightBD467ID},
	{ID: uuid.MustParse("3c5c0000-97c6-fc34-fcd3-08db322230ce"), SeatNumber: "12F", Type: entity.SeatTypeAisle, Class: entity.SeatClassEconomy, FlightID: flightBD467ID},
}

// Load returns a copy of the predefined reference data. Callers may modify the
// returned slices freely.
func Load() entity.ReferenceData {
	return entity.ReferenceData{
		Airports:  append([]entity.Airport(nil), airports...),
		Aircrafts: append([]entity.Aircraft(nil), aircrafts...),
		Flights:   append([]entity.Flight(nil), flights...),
		Seats:     append([]entity.Seat(nil), seats...),
	}
}
