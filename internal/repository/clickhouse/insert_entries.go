package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

// InsertEntries writes analytics rows to ledger_entries. Rows are keyed by position, so
// re-inserting an entry replaces it.
func (r *Repository) InsertEntries(ctx context.Context, entries []model.Entry) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_entries", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	const query = `
INSERT INTO ledger_entries (
	position,
	batch_id,
	origin,
	harvest_date,
	grade,
	weight_kg,
	submitter_id,
	submitter_name,
	block_hash,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare entries batch: %w", err)
	}

	for _, entry := range entries {
		if err = batch.Append(
			entry.Position,
			entry.BatchID,
			entry.Origin,
			entry.HarvestDate,
			entry.Grade,
			entry.WeightKg,
			entry.SubmitterID,
			entry.SubmitterName,
			entry.BlockHash,
			entry.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append entry: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert entries: %w", err)
	}
	return nil
}
