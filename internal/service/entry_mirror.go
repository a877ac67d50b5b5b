package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/pkg/batcher"
)

// BatchMirror copies indexed entries to an EntryWriter in throttled batches. Mirror never
// blocks a submit: when the queue is full the entry is dropped and counted.
type BatchMirror struct {
	batcher *batcher.Batcher[model.Entry]
	metrics MirrorMetrics
	logger  *zap.Logger
}

// MirrorOptions tunes the batching of NewBatchMirror.
type MirrorOptions struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// NewBatchMirror builds a mirror that writes through writer. Call Start before use.
func NewBatchMirror(writer EntryWriter, metrics MirrorMetrics, opts MirrorOptions, logger *zap.Logger) *BatchMirror {
	logger = logger.Named("entry_mirror")
	return &BatchMirror{
		batcher: batcher.New(logger, writer.InsertEntries, batcher.Options{
			FlushSize:     opts.FlushSize,
			FlushInterval: opts.FlushInterval,
			RPS:           opts.RPS,
			OnFlush:       metrics.ObserveFlush,
		}),
		metrics: metrics,
		logger:  logger,
	}
}

// Start launches the flush loop.
func (m *BatchMirror) Start(ctx context.Context) {
	m.batcher.Start(ctx)
}

// Stop flushes buffered entries and waits for the flush loop to exit.
func (m *BatchMirror) Stop() {
	m.batcher.Stop()
}

// Mirror queues entry for the next flush.
func (m *BatchMirror) Mirror(entry model.Entry) {
	if m.batcher.TryAdd(entry) {
		return
	}
	m.metrics.IncDropped()
	m.logger.Warn("entry mirror queue full, entry dropped",
		zap.Uint64("position", entry.Position),
		zap.String("batch_id", entry.BatchID))
}
