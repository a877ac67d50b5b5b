package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mirrorFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffeeledger",
		Subsystem: "entry_mirror",
		Name:      "flush_total",
		Help:      "Count of entry mirror flushes.",
	}, []string{"status"})

	mirrorFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffeeledger",
		Subsystem: "entry_mirror",
		Name:      "flush_duration_seconds",
		Help:      "Duration of an entry mirror flush.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	mirrorFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coffeeledger",
		Subsystem: "entry_mirror",
		Name:      "flush_size",
		Help:      "Number of entries written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	mirrorDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coffeeledger",
		Subsystem: "entry_mirror",
		Name:      "dropped_total",
		Help:      "Count of entries that could not be queued for mirroring.",
	})
)

// EntryMirror tracks metrics for the analytics entry mirror.
type EntryMirror struct{}

// NewEntryMirror creates an EntryMirror metrics collector.
func NewEntryMirror() *EntryMirror {
	return &EntryMirror{}
}

// ObserveFlush records a flush of size entries.
func (m EntryMirror) ObserveFlush(err error, size int, started time.Time) {
	status := statusOf(err)
	mirrorFlushTotal.WithLabelValues(status).Inc()
	mirrorFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	mirrorFlushSize.Observe(float64(size))
}

// IncDropped counts an entry that was not mirrored.
func (m EntryMirror) IncDropped() {
	mirrorDroppedTotal.Inc()
}
