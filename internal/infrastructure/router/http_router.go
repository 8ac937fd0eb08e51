package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"flight-server/internal/usecase"
	"flight-server/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SeedStatusProvider reports reference data counts for both stores
type SeedStatusProvider interface {
	Status(ctx context.Context) ([]usecase.KindStatus, error)
}

// NewRouter builds the HTTP routes served next to the seeded stores
func NewRouter(status SeedStatusProvider, gatherer prometheus.Gatherer, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Healthy"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/seed/status", func(w http.ResponseWriter, r *http.Request) {
		statuses, err := status.Status(r.Context())
		if err != nil {
			log.Error("Failed to read seed status", "error", err, "request_id", middleware.GetReqID(r.Context()))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "seed status unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"kinds": statuses})
	})

	return r
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
