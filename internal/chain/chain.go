package chain

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

// Chain is the ordered, append-only sequence of sealed blocks. It is not safe for concurrent
// use; the owner serializes access.
type Chain struct {
	blocks     []model.Block
	difficulty int
}

// NewGenesis builds the position-0 block.
func NewGenesis(createdAt time.Time) (model.Block, error) {
	genesis := model.Block{
		Position:     0,
		CreatedAt:    model.Timestamp(createdAt),
		Payload:      model.NewGenesisPayload(),
		PreviousHash: model.GenesisPreviousHash,
		Nonce:        0,
	}
	h, err := ComputeHash(genesis)
	if err != nil {
		return model.Block{}, fmt.Errorf("hash genesis: %w", err)
	}
	genesis.Hash = h
	return genesis, nil
}

// New returns a chain holding only a fresh genesis block.
func New(createdAt time.Time, difficulty int) (*Chain, error) {
	if err := CheckDifficulty(difficulty); err != nil {
		return nil, err
	}
	genesis, err := NewGenesis(createdAt)
	if err != nil {
		return nil, err
	}
	return &Chain{blocks: []model.Block{genesis}, difficulty: difficulty}, nil
}

// FromBlocks wraps previously persisted blocks. The blocks are not validated; call Validate.
func FromBlocks(blocks []model.Block, difficulty int) (*Chain, error) {
	if err := CheckDifficulty(difficulty); err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrEmpty
	}
	return &Chain{
		blocks:     append([]model.Block(nil), blocks...),
		difficulty: difficulty,
	}, nil
}

// Difficulty returns the active proof-of-work difficulty.
func (c *Chain) Difficulty() int {
	return c.difficulty
}

// Len returns the number of blocks including genesis.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Tip returns the last block.
func (c *Chain) Tip() model.Block {
	return c.blocks[len(c.blocks)-1]
}

// Genesis returns the position-0 block.
func (c *Chain) Genesis() model.Block {
	return c.blocks[0]
}

// At returns the block at position.
func (c *Chain) At(position uint64) (model.Block, bool) {
	if position >= uint64(len(c.blocks)) {
		return model.Block{}, false
	}
	return c.blocks[position], true
}

// Blocks returns a copy of the chain.
func (c *Chain) Blocks() []model.Block {
	return append([]model.Block(nil), c.blocks...)
}

// Candidate returns the unsealed block that would extend the tip with payload. Its timestamp
// never precedes the tip's.
func (c *Chain) Candidate(payload model.Payload, now time.Time) model.Block {
	tip := c.Tip()
	createdAt := model.Timestamp(now)
	if createdAt.Before(tip.CreatedAt) {
		createdAt = tip.CreatedAt
	}
	return model.Block{
		Position:     tip.Position + 1,
		CreatedAt:    createdAt,
		Payload:      payload,
		PreviousHash: tip.Hash,
	}
}

// Append extends the chain with a sealed block. A block that does not extend the current tip is
// rejected with an *AppendViolation and the chain is left untouched.
func (c *Chain) Append(b model.Block) error {
	tip := c.Tip()
	computed, err := ComputeHash(b)
	if err != nil {
		return &AppendViolation{Position: b.Position, Invariant: InvariantHash, Detail: err.Error()}
	}
	if inv, detail := checkSuccessor(tip, b, computed, c.difficulty); inv != "" {
		return &AppendViolation{Position: b.Position, Invariant: inv, Detail: detail}
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// checkSuccessor verifies cur against its predecessor. computed is the recomputed hash of cur.
// It returns an empty invariant when cur is a valid successor.
func checkSuccessor(prev, cur model.Block, computed string, difficulty int) (Invariant, string) {
	if cur.Position != prev.Position+1 {
		return InvariantPosition, fmt.Sprintf("expected %d, got %d", prev.Position+1, cur.Position)
	}
	if cur.Hash != computed {
		return InvariantHash, fmt.Sprintf("stored %s, computed %s", cur.Hash, computed)
	}
	if cur.PreviousHash != prev.Hash {
		return InvariantLink, fmt.Sprintf("expected %s, got %s", prev.Hash, cur.PreviousHash)
	}
	if !MeetsDifficulty(cur.Hash, difficulty) {
		return InvariantDifficulty, fmt.Sprintf("hash %s does not have %d leading zeros", cur.Hash, difficulty)
	}
	if cur.CreatedAt.Before(prev.CreatedAt) {
		return InvariantTimestamp, fmt.Sprintf("%s precedes %s", cur.CreatedAt.Format(time.RFC3339Nano), prev.CreatedAt.Format(time.RFC3339Nano))
	}
	return "", ""
}

func checkGenesis(g model.Block, computed string) (Invariant, string) {
	if g.Position != 0 {
		return InvariantGenesis, fmt.Sprintf("position %d", g.Position)
	}
	if g.PreviousHash != model.GenesisPreviousHash {
		return InvariantGenesis, fmt.Sprintf("previous hash %q is not the sentinel", g.PreviousHash)
	}
	if g.Hash != computed {
		return InvariantHash, fmt.Sprintf("stored %s, computed %s", g.Hash, computed)
	}
	return "", ""
}
