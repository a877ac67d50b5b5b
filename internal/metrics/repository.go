package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffeeledger",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of chain store operations.",
	}, []string{"operation", "backend", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffeeledger",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain store operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "backend", "status"})
)

// Repository tracks metrics for a chain store backend.
type Repository struct {
	backend string
}

// NewRepository creates a Repository metrics collector labelled with backend.
func NewRepository(backend string) *Repository {
	if backend == "" {
		backend = "unknown"
	}
	return &Repository{backend: backend}
}

// Observe records duration and status of a store operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryOperationsTotal.WithLabelValues(operation, m.backend, status).Inc()
	repositoryOperationDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
