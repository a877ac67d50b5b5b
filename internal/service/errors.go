package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by every operation called before Initialize succeeded.
	ErrNotInitialized = errors.New("ledger is not initialized")
	// ErrHalted is returned by Submit after an internal append violation.
	ErrHalted = errors.New("ledger halted after an internal append violation")
	// ErrPersistence is matched by every PersistenceError.
	ErrPersistence = errors.New("ledger persistence failed")
	// ErrDifficultyRaised is returned by Initialize when the configured difficulty exceeds the
	// one the stored chain was sealed with.
	ErrDifficultyRaised = errors.New("configured difficulty exceeds stored chain difficulty")
)

// PersistenceError reports a failed store operation.
type PersistenceError struct {
	Op       string
	Location string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Location, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPersistence) hold.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
