package entity

// ReferenceData is the full set of reference records seeded on startup
type ReferenceData struct {
	Airports  []Airport
	Aircrafts []Aircraft
	Flights   []Flight
	Seats     []Seat
}
