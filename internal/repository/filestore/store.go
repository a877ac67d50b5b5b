// Package filestore persists the chain as a single JSON document on the local filesystem.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/snapshot"
)

const quarantineLayout = "20060102T150405Z"

// ErrLocked is returned by Lock when another process owns the storage path.
var ErrLocked = errors.New("storage path is locked by another process")

// Store keeps the chain in one file. Saves replace the file atomically. Store does not
// serialize its own calls; the ledger service does.
type Store struct {
	path    string
	metrics Metrics
	now     func() time.Time
	lock    *flock.Flock
}

// NewStore returns a Store backed by path.
func NewStore(path string, metrics Metrics) (*Store, error) {
	if path == "" {
		return nil, errors.New("storage path is required")
	}
	return &Store{path: path, metrics: metrics, now: time.Now}, nil
}

// Lock takes an advisory lock on <path>.lock. One process owns a chain document at a time; a
// second writer would fork history on its next save. The lock is released by Close.
func (s *Store) Lock() error {
	if s.lock != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}
	fl := flock.New(s.path + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, s.path)
	}
	s.lock = fl
	return nil
}

// Close releases the lock taken by Lock.
func (s *Store) Close() error {
	if s.lock == nil {
		return nil
	}
	err := s.lock.Unlock()
	s.lock = nil
	if err != nil {
		return fmt.Errorf("unlock %s: %w", s.path, err)
	}
	return nil
}

// Location returns the file path.
func (s *Store) Location() string {
	return s.path
}

// Save atomically replaces the stored document with snap.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("save", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	if err = snapshot.WriteFile(s.path, snap); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Load reads the stored document. The boolean is false when nothing has been stored yet.
// A document that cannot be parsed is reported with snapshot.ErrCorrupt.
func (s *Store) Load(ctx context.Context) (snap model.Snapshot, found bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("load", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return model.Snapshot{}, false, err
	}
	snap, err = snapshot.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("read %s: %w", s.path, err)
	}
	return snap, true, nil
}

// Quarantine moves the stored document aside so that a fresh chain can be started. It returns
// the new location of the document.
func (s *Store) Quarantine(ctx context.Context) (dest string, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("quarantine", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return "", err
	}
	dest = fmt.Sprintf("%s.corrupt-%s", s.path, s.now().UTC().Format(quarantineLayout))
	if err = os.Rename(s.path, dest); err != nil {
		return "", fmt.Errorf("quarantine %s: %w", s.path, err)
	}
	return dest, nil
}
