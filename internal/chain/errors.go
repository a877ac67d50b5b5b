package chain

import (
	"errors"
	"fmt"
)

// Invariant names a chain rule a block can violate.
type Invariant string

const (
	InvariantGenesis    Invariant = "genesis"
	InvariantPosition   Invariant = "position"
	InvariantLink       Invariant = "previous_hash"
	InvariantHash       Invariant = "hash"
	InvariantDifficulty Invariant = "difficulty"
	InvariantTimestamp  Invariant = "created_at"
)

var (
	// ErrAppendViolation is matched by every AppendViolation.
	ErrAppendViolation = errors.New("chain append violation")
	// ErrIntegrity is matched by every IntegrityError.
	ErrIntegrity = errors.New("chain integrity check failed")
	// ErrEmpty is returned when a chain is built without a genesis block.
	ErrEmpty = errors.New("chain has no genesis block")
)

// AppendViolation is returned by Append when a candidate block does not extend the tip.
type AppendViolation struct {
	Position  uint64
	Invariant Invariant
	Detail    string
}

func (e *AppendViolation) Error() string {
	return fmt.Sprintf("append block %d: %s: %s", e.Position, e.Invariant, e.Detail)
}

// Is makes errors.Is(err, ErrAppendViolation) hold.
func (e *AppendViolation) Is(target error) bool {
	return target == ErrAppendViolation
}

// IntegrityError reports the first block that breaks the chain.
type IntegrityError struct {
	Position  uint64
	Invariant Invariant
	Detail    string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("block %d invalid: %s: %s", e.Position, e.Invariant, e.Detail)
}

// Is makes errors.Is(err, ErrIntegrity) hold.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}
