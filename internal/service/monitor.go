package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/chain"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/clock"
)

// ValidationMonitor re-validates the chain on an interval and reports every outcome.
type ValidationMonitor struct {
	validator ChainValidator
	interval  time.Duration
	onResult  func(valid bool)
	logger    *zap.Logger
}

// NewValidationMonitor builds a monitor. onResult receives false when the chain is invalid or
// could not be walked.
func NewValidationMonitor(validator ChainValidator, interval time.Duration, onResult func(valid bool), logger *zap.Logger) *ValidationMonitor {
	return &ValidationMonitor{
		validator: validator,
		interval:  interval,
		onResult:  onResult,
		logger:    logger.Named("validation_monitor"),
	}
}

// Run validates until ctx is canceled. It returns nil on cancellation.
func (m *ValidationMonitor) Run(ctx context.Context) error {
	err := clock.Every(ctx, m.interval, m.check)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (m *ValidationMonitor) check(ctx context.Context) {
	v, err := m.validator.ValidateChain(ctx)
	switch {
	case ctx.Err() != nil:
		return
	case err != nil:
		m.logger.Error("chain validation failed to run", zap.Error(err))
		m.onResult(false)
	case !v.Valid:
		m.logger.Error("chain integrity violated", zap.Error(invalidErr(v)))
		m.onResult(false)
	default:
		m.onResult(true)
	}
}

func invalidErr(v chain.Validation) error {
	if v.Err == nil {
		return chain.ErrIntegrity
	}
	return v.Err
}
