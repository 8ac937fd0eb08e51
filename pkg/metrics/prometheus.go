package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store labels
const (
	StoreRelational = "relational"
	StoreDocument   = "document"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RecordsSeeded *prometheus.CounterVec
	SeedRuns      *prometheus.CounterVec
	SeedDuration  prometheus.Histogram
	ErrorsCount   *prometheus.CounterVec
}

// NewMetrics creates seeding metrics registered on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsSeeded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_seeded_total",
			Help:      "The total number of reference records seeded",
		}, []string{"store", "kind"}),
		SeedRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_runs_total",
			Help:      "The total number of data seeder runs",
		}, []string{"result"}),
		SeedDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "seed_duration_seconds",
			Help:      "Time taken by a data seeder run",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
