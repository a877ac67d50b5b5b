package model

import "time"

// BlockView is the read-only rendering of a block handed to callers outside the ledger.
type BlockView struct {
	Position     uint64         `json:"position"`
	CreatedAt    time.Time      `json:"createdAt"`
	Payload      map[string]any `json:"payload"`
	PreviousHash string         `json:"previousHash"`
	Nonce        uint64         `json:"nonce"`
	Hash         string         `json:"hash"`
}

// View renders b. The returned payload map is a fresh copy.
func (b Block) View() BlockView {
	return BlockView{
		Position:     b.Position,
		CreatedAt:    b.CreatedAt,
		Payload:      b.Payload.Fields(),
		PreviousHash: b.PreviousHash,
		Nonce:        b.Nonce,
		Hash:         b.Hash,
	}
}

// Views renders blocks in order.
func Views(blocks []Block) []BlockView {
	out := make([]BlockView, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.View())
	}
	return out
}
