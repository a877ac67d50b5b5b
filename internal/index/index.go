// Package index keeps the secondary lookups of the ledger: batch id to position and origin to
// positions. It holds positions only; blocks are resolved through the chain.
package index

import (
	"strings"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

// Index maps batch ids and origins to chain positions. It is not safe for concurrent use; the
// ledger service guards it with its state lock.
type Index struct {
	byBatch  map[string]uint64
	byOrigin map[string][]uint64
}

// New returns an empty index.
func New() *Index {
	return &Index{
		byBatch:  make(map[string]uint64),
		byOrigin: make(map[string][]uint64),
	}
}

// Rebuild discards the current contents and indexes blocks in order. Genesis is skipped.
func (ix *Index) Rebuild(blocks []model.Block) {
	ix.byBatch = make(map[string]uint64, len(blocks))
	ix.byOrigin = make(map[string][]uint64)
	for _, b := range blocks {
		ix.Record(b)
	}
}

// Record indexes a freshly appended block. A batch id seen before now points at b.
func (ix *Index) Record(b model.Block) {
	if b.IsGenesis() {
		return
	}
	if id := b.Payload.BatchID; id != "" {
		ix.byBatch[id] = b.Position
	}
	if origin := originKey(b.Payload.Origin); origin != "" {
		ix.byOrigin[origin] = append(ix.byOrigin[origin], b.Position)
	}
}

// LookupByBatch returns the position of the latest block carrying batchID.
func (ix *Index) LookupByBatch(batchID string) (uint64, bool) {
	pos, ok := ix.byBatch[batchID]
	return pos, ok
}

// LookupByOrigin returns the positions of every block from origin in ascending order. Origins
// match case-insensitively.
func (ix *Index) LookupByOrigin(origin string) []uint64 {
	positions := ix.byOrigin[originKey(origin)]
	return append([]uint64(nil), positions...)
}

// Len returns the number of distinct batch ids.
func (ix *Index) Len() int {
	return len(ix.byBatch)
}

// Origins returns the number of distinct origins.
func (ix *Index) Origins() int {
	return len(ix.byOrigin)
}

func originKey(origin string) string {
	return strings.ToLower(strings.TrimSpace(origin))
}
