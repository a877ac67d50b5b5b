package transport

import (
	"context"
	"io"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/chain"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		GetByBatch(ctx context.Context, batchID string) ([]model.BlockView, error)
		GetByOrigin(ctx context.Context, origin string) ([]model.BlockView, error)
		GetAll(ctx context.Context) ([]model.BlockView, error)
		ValidateChain(ctx context.Context) (chain.Validation, error)
		Info(ctx context.Context) (service.Info, error)
		ExportSnapshot(ctx context.Context, w io.Writer) error
	}
)
