package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

const (
	// MaxDifficulty is the highest accepted number of leading zero hex characters.
	MaxDifficulty = 6

	// attemptsPerLevel scales the expected 16^d attempts into a search cap; a search that
	// exhausts it is astronomically unlikely for a working hash function.
	attemptsPerLevel = 64

	ctxCheckInterval = 4096
)

// ErrNonceSpaceExhausted is returned when no nonce within the search cap satisfies the
// difficulty predicate.
var ErrNonceSpaceExhausted = errors.New("nonce search cap exhausted")

// MiningStats describes a finished proof-of-work search.
type MiningStats struct {
	Attempts uint64
	Duration time.Duration
}

// Miner seals blocks with proof-of-work.
type Miner struct {
	difficulty  int
	maxAttempts uint64
}

// NewMiner builds a Miner for difficulty. Difficulty outside [0, MaxDifficulty] is a
// configuration error.
func NewMiner(difficulty int) (*Miner, error) {
	if err := CheckDifficulty(difficulty); err != nil {
		return nil, err
	}
	return &Miner{
		difficulty:  difficulty,
		maxAttempts: attemptsPerLevel * uint64(math.Pow(16, float64(difficulty))),
	}, nil
}

// CheckDifficulty validates a configured difficulty.
func CheckDifficulty(difficulty int) error {
	if difficulty < 0 || difficulty > MaxDifficulty {
		return fmt.Errorf("difficulty %d out of range [0, %d]", difficulty, MaxDifficulty)
	}
	return nil
}

// Difficulty returns the number of leading zero hex characters the miner targets.
func (m *Miner) Difficulty() int {
	return m.difficulty
}

// Seal searches nonces upward from 0 and returns b with the first nonce whose hash satisfies
// the difficulty predicate. The input block's Nonce and Hash are ignored.
func (m *Miner) Seal(ctx context.Context, b model.Block) (model.Block, MiningStats, error) {
	started := time.Now()
	s, err := newSealer(b)
	if err != nil {
		return model.Block{}, MiningStats{}, err
	}

	for nonce := uint64(0); nonce < m.maxAttempts; nonce++ {
		if nonce%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return model.Block{}, MiningStats{Attempts: nonce, Duration: time.Since(started)}, err
			}
		}
		sum := s.digest(nonce)
		if leadingZeroNibbles(sum, m.difficulty) {
			b.Nonce = nonce
			b.Hash = hex.EncodeToString(sum[:])
			return b, MiningStats{Attempts: nonce + 1, Duration: time.Since(started)}, nil
		}
	}

	return model.Block{}, MiningStats{Attempts: m.maxAttempts, Duration: time.Since(started)},
		fmt.Errorf("seal block %d at difficulty %d: %w", b.Position, m.difficulty, ErrNonceSpaceExhausted)
}
