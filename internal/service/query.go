package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/chain"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

// Info summarizes the chain.
type Info struct {
	Length     int              `json:"length"`
	Difficulty int              `json:"difficulty"`
	Valid      bool             `json:"valid"`
	Latest     *model.BlockView `json:"latestBlock,omitempty"`
	Location   string           `json:"storage"`
	Batches    int              `json:"indexedBatches"`
	Origins    int              `json:"indexedOrigins"`
}

// GetByBatch returns the block most recently recorded for batchID, or an empty slice.
func (s *LedgerService) GetByBatch(ctx context.Context, batchID string) ([]model.BlockView, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	pos, ok := s.index.LookupByBatch(batchID)
	if !ok {
		return []model.BlockView{}, nil
	}
	b, ok := s.chain.At(pos)
	if !ok {
		return []model.BlockView{}, nil
	}
	return []model.BlockView{b.View()}, nil
}

// GetByOrigin returns every block recorded for origin in position order. Origins match
// case-insensitively.
func (s *LedgerService) GetByOrigin(ctx context.Context, origin string) ([]model.BlockView, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	positions := s.index.LookupByOrigin(origin)
	out := make([]model.BlockView, 0, len(positions))
	for _, pos := range positions {
		if b, ok := s.chain.At(pos); ok {
			out = append(out, b.View())
		}
	}
	return out, nil
}

// GetAll returns every block after genesis in position order.
func (s *LedgerService) GetAll(ctx context.Context) ([]model.BlockView, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	s.stateMu.RLock()
	blocks := s.chain.Blocks()
	s.stateMu.RUnlock()

	return model.Views(blocks[1:]), nil
}

// ValidateChain walks a copy of the chain taken under the read lock, so submits are blocked
// only for the copy.
func (s *LedgerService) ValidateChain(ctx context.Context) (v chain.Validation, err error) {
	if err := s.ready(); err != nil {
		return chain.Validation{}, err
	}

	s.stateMu.RLock()
	blocks := s.chain.Blocks()
	difficulty := s.chain.Difficulty()
	s.stateMu.RUnlock()

	started := time.Now()
	defer func() {
		s.metrics.ObserveValidation(v.Valid, err, started)
	}()
	return chain.ValidateBlocks(ctx, blocks, difficulty)
}

// Info reports the chain length, difficulty, validity and tip.
func (s *LedgerService) Info(ctx context.Context) (Info, error) {
	if err := s.ready(); err != nil {
		return Info{}, err
	}

	s.stateMu.RLock()
	info := Info{
		Length:     s.chain.Len(),
		Difficulty: s.chain.Difficulty(),
		Location:   s.store.Location(),
		Batches:    s.index.Len(),
		Origins:    s.index.Origins(),
	}
	tip := s.chain.Tip()
	s.stateMu.RUnlock()

	if !tip.IsGenesis() {
		view := tip.View()
		info.Latest = &view
	}

	v, err := s.ValidateChain(ctx)
	if err != nil {
		return Info{}, err
	}
	info.Valid = v.Valid
	return info, nil
}
