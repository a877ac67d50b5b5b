package chain

import (
	"context"
	"runtime"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/pkg/workerpool"
)

// parallelHashThreshold is the chain length from which hashes are recomputed concurrently.
const parallelHashThreshold = 512

// Validation is the outcome of a full chain walk.
type Validation struct {
	Valid            bool
	FirstBadPosition *uint64
	Err              *IntegrityError
}

// Validate walks the chain from genesis and reports the lowest position that breaks an
// invariant. The error is non-nil only when ctx ends before the walk completes.
func (c *Chain) Validate(ctx context.Context) (Validation, error) {
	return validateBlocks(ctx, c.blocks, c.difficulty)
}

// ValidateBlocks validates blocks that are not wrapped in a Chain, such as a snapshot read
// from disk.
func ValidateBlocks(ctx context.Context, blocks []model.Block, difficulty int) (Validation, error) {
	if len(blocks) == 0 {
		return invalid(&IntegrityError{Position: 0, Invariant: InvariantGenesis, Detail: "missing"}), nil
	}
	return validateBlocks(ctx, blocks, difficulty)
}

func validateBlocks(ctx context.Context, blocks []model.Block, difficulty int) (Validation, error) {
	hashes, err := recomputeHashes(ctx, blocks)
	if err != nil {
		return Validation{}, err
	}

	if inv, detail := checkGenesis(blocks[0], hashes[0]); inv != "" {
		return invalid(&IntegrityError{Position: 0, Invariant: inv, Detail: detail}), nil
	}
	for i := 1; i < len(blocks); i++ {
		if inv, detail := checkSuccessor(blocks[i-1], blocks[i], hashes[i], difficulty); inv != "" {
			return invalid(&IntegrityError{Position: uint64(i), Invariant: inv, Detail: detail}), nil
		}
	}
	return Validation{Valid: true}, nil
}

func invalid(err *IntegrityError) Validation {
	pos := err.Position
	return Validation{Valid: false, FirstBadPosition: &pos, Err: err}
}

// recomputeHashes returns the canonical hash of every block. A block that cannot be encoded
// gets an empty hash, which never matches a stored one.
func recomputeHashes(ctx context.Context, blocks []model.Block) ([]string, error) {
	hashes := make([]string, len(blocks))
	compute := func(_ context.Context, i int) error {
		h, err := ComputeHash(blocks[i])
		if err == nil {
			hashes[i] = h
		}
		return nil
	}

	if len(blocks) < parallelHashThreshold {
		for i := range blocks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			_ = compute(ctx, i)
		}
		return hashes, nil
	}

	if err := workerpool.Range(ctx, runtime.GOMAXPROCS(0), len(blocks), compute, nil); err != nil {
		return nil, err
	}
	return hashes, nil
}
