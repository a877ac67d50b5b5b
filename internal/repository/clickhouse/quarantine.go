package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const quarantineLayout = "20060102T150405Z"

// Quarantine copies the stored chain into ledger_blocks_quarantine under a timestamped id and
// empties ledger_blocks. It returns where the rows went.
func (r *Repository) Quarantine(ctx context.Context) (dest string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("quarantine", err, start)
	}()

	id := r.now().UTC().Format(quarantineLayout)

	const copyQuery = `
INSERT INTO ledger_blocks_quarantine (
	quarantine_id,
	position,
	created_at,
	payload,
	previous_hash,
	nonce,
	hash,
	difficulty,
	batch_id,
	origin,
	inserted_at
)
SELECT
	?,
	position,
	created_at,
	payload,
	previous_hash,
	nonce,
	hash,
	difficulty,
	batch_id,
	origin,
	inserted_at
FROM ledger_blocks`

	if err = r.conn.Exec(ctx, copyQuery, id); err != nil {
		return "", fmt.Errorf("copy blocks to quarantine: %w", err)
	}
	if err = r.conn.Exec(ctx, `TRUNCATE TABLE ledger_blocks`); err != nil {
		return "", fmt.Errorf("truncate blocks: %w", err)
	}
	return fmt.Sprintf("%s/ledger_blocks_quarantine?quarantine_id=%s", r.location, id), nil
}
