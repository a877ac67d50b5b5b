package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/snapshot"
)

// Load reads every stored block in position order. The boolean is false when the table is
// empty. Rows whose payload cannot be decoded are reported with snapshot.ErrCorrupt.
func (r *Repository) Load(ctx context.Context) (snap model.Snapshot, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("load", err, start)
	}()

	const query = `
SELECT
	position,
	created_at,
	payload,
	previous_hash,
	nonce,
	hash,
	difficulty
FROM ledger_blocks
ORDER BY position ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("query blocks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var difficulty uint8
	for rows.Next() {
		var (
			block   model.Block
			payload string
		)
		if err = rows.Scan(
			&block.Position,
			&block.CreatedAt,
			&payload,
			&block.PreviousHash,
			&block.Nonce,
			&block.Hash,
			&difficulty,
		); err != nil {
			return model.Snapshot{}, false, fmt.Errorf("scan block: %w", err)
		}
		if err = json.Unmarshal([]byte(payload), &block.Payload); err != nil {
			return model.Snapshot{}, false, fmt.Errorf("%w: payload of block %d: %v", snapshot.ErrCorrupt, block.Position, err)
		}
		block.CreatedAt = model.Timestamp(block.CreatedAt)
		snap.Blocks = append(snap.Blocks, block)
	}
	if err = rows.Err(); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("iterate blocks: %w", err)
	}

	if len(snap.Blocks) == 0 {
		return model.Snapshot{}, false, nil
	}
	snap.Difficulty = int(difficulty)
	snap.LastUpdated = snap.Blocks[len(snap.Blocks)-1].CreatedAt
	return snap, true, nil
}
