package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "submit_total",
		Help:      "Count of submitted entries.",
	}, []string{"status"})

	ledgerSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "submit_duration_seconds",
		Help:      "Duration of a submit including mining and persistence.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ledgerMiningAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "mining_attempts",
		Help:      "Nonces tried per sealed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 14), // 1..4^13
	})

	ledgerMiningDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "mining_duration_seconds",
		Help:      "Duration of the proof-of-work search per block.",
		Buckets:   prometheus.DefBuckets,
	})

	ledgerDurabilityWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "durability_warnings_total",
		Help:      "Count of appended blocks whose snapshot could not be saved.",
	})

	ledgerChainLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "chain_length",
		Help:      "Number of blocks in the chain including genesis.",
	})

	ledgerValidationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "validation_total",
		Help:      "Count of full chain validations by result.",
	}, []string{"result"})

	ledgerValidationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coffeeledger",
		Subsystem: "ledger",
		Name:      "validation_duration_seconds",
		Help:      "Duration of a full chain validation.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Ledger tracks metrics for the ledger service.
type Ledger struct{}

// NewLedger creates a Ledger metrics collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveSubmit records the outcome and duration of a submit.
func (m Ledger) ObserveSubmit(err error, started time.Time) {
	status := statusOf(err)
	ledgerSubmitTotal.WithLabelValues(status).Inc()
	ledgerSubmitDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveMining records a finished proof-of-work search.
func (m Ledger) ObserveMining(attempts uint64, took time.Duration) {
	ledgerMiningAttempts.Observe(float64(attempts))
	ledgerMiningDuration.Observe(took.Seconds())
}

// IncDurabilityWarning counts a block that is appended in memory but not persisted.
func (m Ledger) IncDurabilityWarning() {
	ledgerDurabilityWarnings.Inc()
}

// SetChainLength publishes the current chain length.
func (m Ledger) SetChainLength(length int) {
	ledgerChainLength.Set(float64(length))
}

// ObserveValidation records a full chain validation. err is set when the walk did not finish.
func (m Ledger) ObserveValidation(valid bool, err error, started time.Time) {
	result := "valid"
	switch {
	case err != nil:
		result = "error"
	case !valid:
		result = "invalid"
	}
	ledgerValidationTotal.WithLabelValues(result).Inc()
	ledgerValidationDuration.Observe(time.Since(started).Seconds())
}
