package clickhouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/pkg/safe"
)

// ErrDiverged is returned by Save when the stored chain is not a prefix of the chain being
// saved.
var ErrDiverged = errors.New("stored chain diverges from in-memory chain")

type storedTip struct {
	count    uint64
	position uint64
	hash     string
}

// Save persists snap. The chain is append-only, so only blocks above the stored tip are
// inserted; the stored tip must match the block at the same position in snap.
func (r *Repository) Save(ctx context.Context, snap model.Snapshot) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save", err, start)
	}()

	tip, err := r.tip(ctx)
	if err != nil {
		return err
	}

	from := uint64(0)
	if tip.count > 0 {
		if tip.count != tip.position+1 {
			return fmt.Errorf("%w: %d rows up to position %d", ErrDiverged, tip.count, tip.position)
		}
		if tip.position >= uint64(len(snap.Blocks)) {
			return fmt.Errorf("%w: stored tip %d beyond in-memory tip %d", ErrDiverged, tip.position, len(snap.Blocks)-1)
		}
		if snap.Blocks[tip.position].Hash != tip.hash {
			return fmt.Errorf("%w: hash mismatch at position %d", ErrDiverged, tip.position)
		}
		from = tip.position + 1
	}

	return r.insertBlocks(ctx, snap.Blocks[from:], snap.Difficulty)
}

func (r *Repository) tip(ctx context.Context) (tip storedTip, err error) {
	const query = `
SELECT count() AS cnt, toUInt64(max(position)) AS max_position, argMax(hash, position) AS tip_hash
FROM ledger_blocks`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return storedTip{}, fmt.Errorf("query chain tip: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return storedTip{}, errors.New("chain tip not found")
	}
	if err = rows.Scan(&tip.count, &tip.position, &tip.hash); err != nil {
		return storedTip{}, fmt.Errorf("scan chain tip: %w", err)
	}
	if err = rows.Err(); err != nil {
		return storedTip{}, fmt.Errorf("iterate chain tip: %w", err)
	}
	return tip, nil
}

func (r *Repository) insertBlocks(ctx context.Context, blocks []model.Block, difficulty int) error {
	if len(blocks) == 0 {
		return nil
	}
	diff, err := safe.Uint8(difficulty)
	if err != nil {
		return fmt.Errorf("difficulty column: %w", err)
	}

	const query = `
INSERT INTO ledger_blocks (
	position,
	created_at,
	payload,
	previous_hash,
	nonce,
	hash,
	difficulty,
	batch_id,
	origin
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		payload, err := json.Marshal(block.Payload)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("encode payload of block %d: %w", block.Position, err)
		}
		if err := batch.Append(
			block.Position,
			block.CreatedAt,
			string(payload),
			block.PreviousHash,
			block.Nonce,
			block.Hash,
			diff,
			block.Payload.BatchID,
			block.Payload.Origin,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
