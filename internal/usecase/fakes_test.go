package usecase

import (
	"context"
	"fmt"

	"flight-server/internal/domain/entity"
	"flight-server/internal/domain/repository"
)

type memoryTables struct {
	airports  []entity.Airport
	aircrafts []entity.Aircraft
	flights   []entity.Flight
	seats     []entity.Seat
}

func (t memoryTables) clone() memoryTables {
	return memoryTables{
		airports:  append([]entity.Airport(nil), t.airports...),
		aircrafts: append([]entity.Aircraft(nil), t.aircrafts...),
		flights:   append([]entity.Flight(nil), t.flights...),
		seats:     append([]entity.Seat(nil), t.seats...),
	}
}

// memoryReferenceRepo works on the uncommitted copy of a fakeTxManager's tables
type memoryReferenceRepo struct {
	tables     *memoryTables
	failCount  map[string]error
	failCreate map[string]error
}

func (r *memoryReferenceRepo) CountAirports(ctx context.Context) (int64, error) {
	if err := r.failCount["airports"]; err != nil {
		return 0, err
	}
	return int64(len(r.tables.airports)), nil
}

func (r *memoryReferenceRepo) CreateAirports(ctx context.Context, airports []entity.Airport) (int64, error) {
	if err := r.failCreate["airports"]; err != nil {
		return 0, err
	}
	r.tables.airports = append(r.tables.airports, airports...)
	return int64(len(airports)), nil
}

func (r *memoryReferenceRepo) CountAircrafts(ctx context.Context) (int64, error) {
	if err := r.failCount["aircrafts"]; err != nil {
		return 0, err
	}
	return int64(len(r.tables.aircrafts)), nil
}

func (r *memoryReferenceRepo) CreateAircrafts(ctx context.Context, aircrafts []entity.Aircraft) (int64, error) {
	if err := r.failCreate["aircrafts"]; err != nil {
		return 0, err
	}
	r.tables.aircrafts = append(r.tables.aircrafts, aircrafts...)
	return int64(len(aircrafts)), nil
}

func (r *memoryReferenceRepo) CountFlights(ctx context.Context) (int64, error) {
	if err := r.failCount["flights"]; err != nil {
		return 0, err
	}
	return int64(len(r.tables.flights)), nil
}

func (r *memoryReferenceRepo) CreateFlights(ctx context.Context, flights []entity.Flight) (int64, error) {
	if err := r.failCreate["flights"]; err != nil {
		return 0, err
	}
	r.tables.flights = append(r.tables.flights, flights...)
	return int64(len(flights)), nil
}

func (r *memoryReferenceRepo) CountSeats(ctx context.Context) (int64, error) {
	if err := r.failCount["seats"]; err != nil {
		return 0, err
	}
	return int64(len(r.tables.seats)), nil
}

func (r *memoryReferenceRepo) CreateSeats(ctx context.Context, seats []entity.Seat) (int64, error) {
	if err := r.failCreate["seats"]; err != nil {
		return 0, err
	}
	r.tables.seats = append(r.tables.seats, seats...)
	return int64(len(seats)), nil
}

// fakeTxManager commits the working copy only when fn and the commit succeed
type fakeTxManager struct {
	committed  memoryTables
	failCount  map[string]error
	failCreate map[string]error
	commitErr  error
	commits    int
	rollbacks  int
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repo repository.ReferenceRepository) error) error {
	work := m.committed.clone()
	repo := &memoryReferenceRepo{tables: &work, failCount: m.failCount, failCreate: m.failCreate}

	if err := fn(repo); err != nil {
		m.rollbacks++
		return err
	}
	if m.commitErr != nil {
		m.rollbacks++
		return m.commitErr
	}

	m.committed = work
	m.commits++
	return nil
}

type fakeDocumentRepo struct {
	collections map[string][]interface{}
	failCount   map[string]error
	failInsert  map[string]error
	deleteErr   error
	insertOrder []string
	deleted     map[string]int64
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		collections: make(map[string][]interface{}),
		failCount:   make(map[string]error),
		failInsert:  make(map[string]error),
		deleted:     make(map[string]int64),
	}
}

func (r *fakeDocumentRepo) Count(ctx context.Context, collection string) (int64, error) {
	if err := r.failCount[collection]; err != nil {
		return 0, err
	}
	return int64(len(r.collections[collection])), nil
}

func (r *fakeDocumentRepo) InsertMany(ctx context.Context, collection string, documents []interface{}) (int, error) {
	if err := r.failInsert[collection]; err != nil {
		return 0, err
	}
	r.insertOrder = append(r.insertOrder, collection)
	r.collections[collection] = append(r.collections[collection], documents...)
	return len(documents), nil
}

func (r *fakeDocumentRepo) DeleteByIDs(ctx context.Context, collection string, ids []string) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}

	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	var kept []interface{}
	var n int64
	for _, doc := range r.collections[collection] {
		if remove[documentID(doc)] {
			n++
			continue
		}
		kept = append(kept, doc)
	}
	r.collections[collection] = kept
	r.deleted[collection] += n
	return n, nil
}

func documentID(doc interface{}) string {
	switch d := doc.(type) {
	case entity.AirportDocument:
		return d.ID
	case entity.AircraftDocument:
		return d.ID
	case entity.FlightDocument:
		return d.ID
	case entity.SeatDocument:
		return d.ID
	default:
		panic(fmt.Sprintf("unexpected document type %T", doc))
	}
}
