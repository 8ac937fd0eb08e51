package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-server/internal/domain/entity"
	"flight-server/internal/domain/repository"
	"flight-server/pkg/logger"
	"flight-server/pkg/metrics"
)

// ErrSeedingFailed is the single failure class reported by the data seeder
var ErrSeedingFailed = errors.New("seeding failed")

// SeedError records which store, entity kind and operation failed during seeding
type SeedError struct {
	Store string
	Kind  string
	Op    string
	Err   error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seeding failed: %s %s %s: %v", e.Store, e.Kind, e.Op, e.Err)
}

func (e *SeedError) Unwrap() error { return e.Err }

// Is reports every SeedError as ErrSeedingFailed
func (e *SeedError) Is(target error) bool { return target == ErrSeedingFailed }

// DocumentMappers converts reference records into their document form
type DocumentMappers struct {
	Airport  func(entity.Airport) (entity.AirportDocument, error)
	Aircraft func(entity.Aircraft) (entity.AircraftDocument, error)
	Flight   func(entity.Flight) (entity.FlightDocument, error)
	Seat     func(entity.Seat) (entity.SeatDocument, error)
}

// KindStatus reports how many records of one kind each store holds
type KindStatus struct {
	Kind       string `json:"kind"`
	Collection string `json:"collection"`
	Rows       int64  `json:"rows"`
	Documents  int64  `json:"documents"`
	Expected   int    `json:"expected"`
}

// seedStep binds one entity kind to its relational and document operations
type seedStep struct {
	kind       string
	collection string
	expected   int
	countRows  func(ctx context.Context, repo repository.ReferenceRepository) (int64, error)
	createRows func(ctx context.Context, repo repository.ReferenceRepository) (int64, error)
	documents  func() ([]interface{}, []string, error)
}

// insertedBatch tracks documents written during a run so they can be removed
// if the relational transaction does not commit
type insertedBatch struct {
	collection string
	ids        []string
}

// DataSeeder populates empty reference tables and collections on startup
type DataSeeder struct {
	txManager repository.TransactionManager
	documents repository.DocumentRepository
	data      entity.ReferenceData
	mappers   DocumentMappers
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewDataSeeder creates a new data seeder
func NewDataSeeder(
	txManager repository.TransactionManager,
	documents repository.DocumentRepository,
	data entity.ReferenceData,
	mappers DocumentMappers,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *DataSeeder {
	return &DataSeeder{
		txManager: txManager,
		documents: documents,
		data:      data,
		mappers:   mappers,
		metrics:   metrics,
		logger:    logger,
	}
}

// Run seeds airports, aircraft, flights and seats in that order inside one
// relational transaction. Each store is checked per kind and only seeded when
// empty. Any failure rolls the transaction back, removes the documents this
// run inserted and returns an error matching ErrSeedingFailed.
func (s *DataSeeder) Run(ctx context.Context) error {
	start := time.Now()
	s.logger.Info("Data seeder is started.")

	var inserted []insertedBatch
	rowsSeeded := make(map[string]int64)
	docsSeeded := make(map[string]int)
	steps := s.steps(stampCreatedAt(s.data, start))

	err := s.txManager.Execute(ctx, func(repo repository.ReferenceRepository) error {
		for _, step := range steps {
			if err := s.seedRows(ctx, repo, step, rowsSeeded); err != nil {
				return err
			}
			if err := s.seedDocuments(ctx, step, docsSeeded, &inserted); err != nil {
				return err
			}
		}
		return nil
	})

	s.metrics.SeedDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if !errors.Is(err, ErrSeedingFailed) {
			err = &SeedError{Store: metrics.StoreRelational, Kind: "all", Op: "transaction", Err: err}
		}
		s.metrics.SeedRuns.WithLabelValues("failed").Inc()
		s.metrics.ErrorsCount.WithLabelValues("seed").Inc()
		s.logger.Error("Data seeder failed", "error", err)
		s.compensate(ctx, inserted)
		return err
	}

	for _, step := range steps {
		s.metrics.RecordsSeeded.WithLabelValues(metrics.StoreRelational, step.kind).Add(float64(rowsSeeded[step.kind]))
		s.metrics.RecordsSeeded.WithLabelValues(metrics.StoreDocument, step.kind).Add(float64(docsSeeded[step.kind]))
	}
	s.metrics.SeedRuns.WithLabelValues("succeeded").Inc()
	s.logger.Info("Data seeder is finished.", "duration", time.Since(start).String())

	return nil
}

func (s *DataSeeder) seedRows(ctx context.Context, repo repository.ReferenceRepository, step seedStep, seeded map[string]int64) error {
	count, err := step.countRows(ctx, repo)
	if err != nil {
		return &SeedError{Store: metrics.StoreRelational, Kind: step.kind, Op: "count", Err: err}
	}
	if count > 0 {
		s.logger.Debug("Skipping relational seed, table not empty", "kind", step.kind, "count", count)
		return nil
	}

	n, err := step.createRows(ctx, repo)
	if err != nil {
		return &SeedError{Store: metrics.StoreRelational, Kind: step.kind, Op: "insert", Err: err}
	}
	seeded[step.kind] = n
	s.logger.Info("Seeded relational records", "kind", step.kind, "inserted", n)
	return nil
}

func (s *DataSeeder) seedDocuments(ctx context.Context, step seedStep, seeded map[string]int, inserted *[]insertedBatch) error {
	count, err := s.documents.Count(ctx, step.collection)
	if err != nil {
		return &SeedError{Store: metrics.StoreDocument, Kind: step.kind, Op: "count", Err: err}
	}
	if count > 0 {
		s.logger.Debug("Skipping document seed, collection not empty", "collection", step.collection, "count", count)
		return nil
	}

	// Map everything first so a bad record leaves the collection untouched.
	docs, ids, err := step.documents()
	if err != nil {
		return &SeedError{Store: metrics.StoreDocument, Kind: step.kind, Op: "map", Err: err}
	}

	*inserted = append(*inserted, insertedBatch{collection: step.collection, ids: ids})
	n, err := s.documents.InsertMany(ctx, step.collection, docs)
	if err != nil {
		// The ids already belong to someone else; removing them would delete their documents.
		if errors.Is(err, repository.ErrDuplicateDocument) {
			*inserted = (*inserted)[:len(*inserted)-1]
		}
		return &SeedError{Store: metrics.StoreDocument, Kind: step.kind, Op: "insert", Err: err}
	}
	seeded[step.kind] = n
	s.logger.Info("Seeded documents", "collection", step.collection, "inserted", n)
	return nil
}

// compensate removes documents written by a run whose relational transaction
// rolled back. Failures are logged only; the original error is what callers see.
func (s *DataSeeder) compensate(ctx context.Context, inserted []insertedBatch) {
	if len(inserted) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	for i := len(inserted) - 1; i >= 0; i-- {
		batch := inserted[i]
		n, err := s.documents.DeleteByIDs(ctx, batch.collection, batch.ids)
		if err != nil {
			s.metrics.ErrorsCount.WithLabelValues("compensate").Inc()
			s.logger.Error("Failed to remove seeded documents after rollback",
				"collection", batch.collection, "ids", len(batch.ids), "error", err)
			continue
		}
		s.logger.Warn("Removed seeded documents after rollback", "collection", batch.collection, "deleted", n)
	}
}

// Status reports the current record counts of every reference kind in both stores
func (s *DataSeeder) Status(ctx context.Context) ([]KindStatus, error) {
	steps := s.steps(s.data)
	statuses := make([]KindStatus, 0, len(steps))

	err := s.txManager.Execute(ctx, func(repo repository.ReferenceRepository) error {
		for _, step := range steps {
			rows, err := step.countRows(ctx, repo)
			if err != nil {
				return fmt.Errorf("count %s rows: %w", step.kind, err)
			}
			docs, err := s.documents.Count(ctx, step.collection)
			if err != nil {
				return fmt.Errorf("count %s documents: %w", step.kind, err)
			}
			statuses = append(statuses, KindStatus{
				Kind:       step.kind,
				Collection: step.collection,
				Rows:       rows,
				Documents:  docs,
				Expected:   step.expected,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return statuses, nil
}

// stampCreatedAt gives every record without a creation time the same one, so
// rows and their documents carry identical timestamps. MongoDB keeps
// milliseconds, so now is truncated to match.
func stampCreatedAt(data entity.ReferenceData, now time.Time) entity.ReferenceData {
	now = now.UTC().Truncate(time.Millisecond)
	out := entity.ReferenceData{
		Airports:  append([]entity.Airport(nil), data.Airports...),
		Aircrafts: append([]entity.Aircraft(nil), data.Aircrafts...),
		Flights:   append([]entity.Flight(nil), data.Flights...),
		Seats:     append([]entity.Seat(nil), data.Seats...),
	}

	for i := range out.Airports {
		if out.Airports[i].CreatedAt.IsZero() {
			out.Airports[i].CreatedAt = now
		}
	}
	for i := range out.Aircrafts {
		if out.Aircrafts[i].CreatedAt.IsZero() {
			out.Aircrafts[i].CreatedAt = now
		}
	}
	for i := range out.Flights {
		if out.Flights[i].CreatedAt.IsZero() {
			out.Flights[i].CreatedAt = now
		}
	}
	for i := range out.Seats {
		if out.Seats[i].CreatedAt.IsZero() {
			out.Seats[i].CreatedAt = now
		}
	}
	return out
}

// mapAll maps every record before anything is written and collects the document ids
func mapAll[R, D any](records []R, toDocument func(R) (D, error), id func(D) string) ([]interface{}, []string, error) {
	docs := make([]interface{}, 0, len(records))
	ids := make([]string, 0, len(records))
	for _, record := range records {
		doc, err := toDocument(record)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, doc)
		ids = append(ids, id(doc))
	}
	return docs, ids, nil
}

func (s *DataSeeder) steps(data entity.ReferenceData) []seedStep {
	return []seedStep{
		{
			kind:       "airports",
			collection: entity.CollectionAirports,
			expected:   len(data.Airports),
			countRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CountAirports(ctx)
			},
			createRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CreateAirports(ctx, data.Airports)
			},
			documents: func() ([]interface{}, []string, error) {
				return mapAll(data.Airports, s.mappers.Airport, func(d entity.AirportDocument) string { return d.ID })
			},
		},
		{
			kind:       "aircrafts",
			collection: entity.CollectionAircrafts,
			expected:   len(data.Aircrafts),
			countRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CountAircrafts(ctx)
			},
			createRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CreateAircrafts(ctx, data.Aircrafts)
			},
			documents: func() ([]interface{}, []string, error) {
				return mapAll(data.Aircrafts, s.mappers.Aircraft, func(d entity.AircraftDocument) string { return d.ID })
			},
		},
		{
			kind:       "flights",
			collection: entity.CollectionFlights,
			expected:   len(data.Flights),
			countRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CountFlights(ctx)
			},
			createRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CreateFlights(ctx, data.Flights)
			},
			documents: func() ([]interface{}, []string, error) {
				return mapAll(data.Flights, s.mappers.Flight, func(d entity.FlightDocument) string { return d.ID })
			},
		},
		{
			kind:       "seats",
			collection: entity.CollectionSeats,
			expected:   len(data.Seats),
			countRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CountSeats(ctx)
			},
			createRows: func(ctx context.Context, repo repository.ReferenceRepository) (int64, error) {
				return repo.CreateSeats(ctx, data.Seats)
			},
			documents: func() ([]interface{}, []string, error) {
				return mapAll(data.Seats, s.mappers.Seat, func(d entity.SeatDocument) string { return d.ID })
			},
		},
	}
}
