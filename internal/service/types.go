package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/chain"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		Save(ctx context.Context, snap model.Snapshot) error
		Load(ctx context.Context) (model.Snapshot, bool, error)
		Quarantine(ctx context.Context) (string, error)
		Location() string
	}
	Metrics interface {
		ObserveSubmit(err error, started time.Time)
		ObserveMining(attempts uint64, took time.Duration)
		IncDurabilityWarning()
		SetChainLength(length int)
		ObserveValidation(valid bool, err error, started time.Time)
	}
	EntryMirror interface {
		Mirror(entry model.Entry)
	}
	EntryWriter interface {
		InsertEntries(ctx context.Context, entries []model.Entry) error
	}
	ChainValidator interface {
		ValidateChain(ctx context.Context) (chain.Validation, error)
	}
	MirrorMetrics interface {
		ObserveFlush(err error, size int, started time.Time)
		IncDropped()
	}
)
