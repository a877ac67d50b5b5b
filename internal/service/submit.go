package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

// SubmitResult is the outcome of a successful submit. DurabilityWarning is set when the block
// was appended but the snapshot could not be saved; the in-memory chain stays authoritative.
type SubmitResult struct {
	Block             model.BlockView
	DurabilityWarning *PersistenceError
}

// Submit validates fields, seals a block against the current tip, appends it, saves the chain
// and indexes the block. Invalid fields are reported with model.ErrPayload and leave the chain
// untouched.
func (s *LedgerService) Submit(ctx context.Context, fields map[string]any) (result SubmitResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSubmit(err, started)
	}()

	if err = s.ready(); err != nil {
		return SubmitResult{}, err
	}
	payload, err := model.ParsePayload(fields)
	if err != nil {
		return SubmitResult{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.halted.Load() {
		return SubmitResult{}, ErrHalted
	}

	// the tip cannot move while writeMu is held
	candidate := s.chain.Candidate(payload, s.cfg.Now())
	sealed, stats, err := s.miner.Seal(ctx, candidate)
	s.metrics.ObserveMining(stats.Attempts, stats.Duration)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("mine block %d: %w", candidate.Position, err)
	}

	saveErr, err := s.commit(ctx, sealed)
	if err != nil {
		return SubmitResult{}, err
	}

	result.Block = sealed.View()
	if saveErr != nil {
		result.DurabilityWarning = &PersistenceError{Op: "save", Location: s.store.Location(), Err: saveErr}
		s.metrics.IncDurabilityWarning()
		s.logger.Warn("block appended but not persisted",
			zap.Uint64("position", sealed.Position),
			zap.String("hash", sealed.Hash),
			zap.Error(saveErr))
	}

	s.mirror.Mirror(model.EntryFromBlock(sealed))

	s.logger.Debug("block sealed",
		zap.Uint64("position", sealed.Position),
		zap.String("batch_id", sealed.Payload.BatchID),
		zap.Uint64("attempts", stats.Attempts),
		zap.Duration("mining", stats.Duration))
	return result, nil
}

// commit appends, saves and indexes sealed as one unit under the state lock. A failed save
// does not undo the append and is returned separately.
func (s *LedgerService) commit(ctx context.Context, sealed model.Block) (saveErr, err error) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if err := s.chain.Append(sealed); err != nil {
		s.halted.Store(true)
		s.logger.DPanic("sealed block rejected by chain, halting submits",
			zap.Uint64("position", sealed.Position),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrHalted, err)
	}

	// the block is already part of the chain; a canceled caller must not prevent the save
	saveErr = s.store.Save(context.WithoutCancel(ctx), s.snapshotOf(s.chain))
	s.index.Record(sealed)
	s.metrics.SetChainLength(s.chain.Len())
	return saveErr, nil
}
