// Package model defines domain models for the coffee provenance ledger.
package model

import (
	"strings"
	"time"
)

// GenesisPreviousHash is the predecessor link stored in the genesis block.
var GenesisPreviousHash = strings.Repeat("0", 64)

const (
	// EntryTypeGenesis marks the payload of the genesis block.
	EntryTypeGenesis = "genesis"
	// EntryTypeCoffee marks payloads accepted through submit.
	EntryTypeCoffee = "coffee_entry"

	genesisMessage = "Coffee Traceability Blockchain Genesis Block"
)

// Block is a sealed ledger entry.
type Block struct {
	Position     uint64    `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
	Payload      Payload   `json:"payload"`
	PreviousHash string    `json:"previousHash"`
	Nonce        uint64    `json:"nonce"`
	Hash         string    `json:"hash"`
}

// IsGenesis reports whether the block sits at position 0.
func (b Block) IsGenesis() bool {
	return b.Position == 0
}

// NewGenesisPayload returns the fixed payload of the genesis block.
func NewGenesisPayload() Payload {
	return Payload{
		Type:  EntryTypeGenesis,
		Extra: map[string]any{"message": genesisMessage},
	}
}

// Timestamp normalizes t to the precision every store keeps.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Snapshot is the unit persisted by a store: the full ordered chain and the difficulty it was
// sealed with.
type Snapshot struct {
	Blocks      []Block
	Difficulty  int
	LastUpdated time.Time
}
