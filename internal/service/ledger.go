// Package service composes the chain, its index and a store into the ledger operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/chain"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/index"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/snapshot"
)

// Config holds the ledger settings.
type Config struct {
	Difficulty int
	// BackupDir receives CreateBackup documents.
	BackupDir string
	// QuarantineCorrupt moves an unreadable or invalid stored chain aside and starts a fresh one
	// instead of failing Initialize.
	QuarantineCorrupt bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// LedgerService owns one chain, its index and its store.
//
// writeMu serializes submits, including mining. stateMu guards the chain and the index: it is
// held exclusively only while a sealed block is appended, saved and indexed, and shared by
// readers, so a reader never sees an appended block that is missing from the index.
type LedgerService struct {
	store   Store
	metrics Metrics
	mirror  EntryMirror
	cfg     Config
	logger  *zap.Logger
	miner   *chain.Miner

	writeMu sync.Mutex
	stateMu sync.RWMutex
	chain   *chain.Chain
	index   *index.Index

	initialized atomic.Bool
	halted      atomic.Bool
}

// NewLedgerService validates cfg and builds an uninitialized service. mirror may be nil.
func NewLedgerService(store Store, metrics Metrics, mirror EntryMirror, cfg Config, logger *zap.Logger) (*LedgerService, error) {
	miner, err := chain.NewMiner(cfg.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("configure miner: %w", err)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if mirror == nil {
		mirror = noopMirror{}
	}
	return &LedgerService{
		store:   store,
		metrics: metrics,
		mirror:  mirror,
		cfg:     cfg,
		logger:  logger.Named("ledger"),
		miner:   miner,
		index:   index.New(),
	}, nil
}

// Initialize loads the stored chain, validates it and rebuilds the index. When nothing is
// stored a fresh chain holding only genesis is created and saved.
func (s *LedgerService) Initialize(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if s.initialized.Load() {
		return nil
	}

	c, err := s.loadChain(ctx)
	if err != nil {
		return err
	}

	s.chain = c
	s.index.Rebuild(c.Blocks())
	s.metrics.SetChainLength(c.Len())
	s.initialized.Store(true)

	tip := c.Tip()
	s.logger.Info("ledger initialized",
		zap.String("location", s.store.Location()),
		zap.Int("length", c.Len()),
		zap.Int("difficulty", c.Difficulty()),
		zap.Uint64("tip_position", tip.Position),
		zap.String("tip_hash", tip.Hash))
	return nil
}

func (s *LedgerService) loadChain(ctx context.Context) (*chain.Chain, error) {
	snap, found, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrCorrupt):
		return s.recover(ctx, err)
	case err != nil:
		return nil, &PersistenceError{Op: "load", Location: s.store.Location(), Err: err}
	case !found:
		s.logger.Info("no stored chain, creating genesis", zap.String("location", s.store.Location()))
		return s.fresh(ctx)
	}

	if len(snap.Blocks) > 1 && s.cfg.Difficulty > snap.Difficulty {
		return nil, fmt.Errorf("%w: configured %d, stored %d", ErrDifficultyRaised, s.cfg.Difficulty, snap.Difficulty)
	}

	started := time.Now()
	v, err := chain.ValidateBlocks(ctx, snap.Blocks, s.cfg.Difficulty)
	s.metrics.ObserveValidation(v.Valid, err, started)
	if err != nil {
		return nil, fmt.Errorf("validate stored chain: %w", err)
	}
	if !v.Valid {
		return s.recover(ctx, v.Err)
	}

	c, err := chain.FromBlocks(snap.Blocks, s.cfg.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("restore chain: %w", err)
	}
	return c, nil
}

// recover applies the quarantine policy to a stored chain that cannot be trusted.
func (s *LedgerService) recover(ctx context.Context, cause error) (*chain.Chain, error) {
	if !s.cfg.QuarantineCorrupt {
		return nil, fmt.Errorf("load chain from %s: %w", s.store.Location(), cause)
	}

	dest, err := s.store.Quarantine(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "quarantine", Location: s.store.Location(), Err: err}
	}
	s.logger.Warn("stored chain quarantined, starting a fresh chain",
		zap.String("location", s.store.Location()),
		zap.String("quarantined_to", dest),
		zap.Error(cause))
	return s.fresh(ctx)
}

func (s *LedgerService) fresh(ctx context.Context) (*chain.Chain, error) {
	c, err := chain.New(s.cfg.Now(), s.cfg.Difficulty)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, s.snapshotOf(c)); err != nil {
		return nil, &PersistenceError{Op: "save", Location: s.store.Location(), Err: err}
	}
	return c, nil
}

func (s *LedgerService) snapshotOf(c *chain.Chain) model.Snapshot {
	return model.Snapshot{
		Blocks:      c.Blocks(),
		Difficulty:  c.Difficulty(),
		LastUpdated: model.Timestamp(s.cfg.Now()),
	}
}

// ready reports whether reads and writes may proceed.
func (s *LedgerService) ready() error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	return nil
}

type noopMirror struct{}

func (noopMirror) Mirror(model.Entry) {}
