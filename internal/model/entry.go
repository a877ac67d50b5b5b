package model

import "time"

// Entry is the flattened analytics row of a submitted block.
type Entry struct {
	Position      uint64
	BatchID       string
	Origin        string
	HarvestDate   string
	Grade         string
	WeightKg      float64
	SubmitterID   string
	SubmitterName string
	BlockHash     string
	CreatedAt     time.Time
}

// EntryFromBlock flattens b.
func EntryFromBlock(b Block) Entry {
	return Entry{
		Position:      b.Position,
		BatchID:       b.Payload.BatchID,
		Origin:        b.Payload.Origin,
		HarvestDate:   b.Payload.HarvestDate,
		Grade:         b.Payload.Grade,
		WeightKg:      b.Payload.WeightKg,
		SubmitterID:   b.Payload.SubmitterID,
		SubmitterName: b.Payload.SubmitterName,
		BlockHash:     b.Hash,
		CreatedAt:     b.CreatedAt,
	}
}
