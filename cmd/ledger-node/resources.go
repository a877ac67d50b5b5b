package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/metrics"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/repository/filestore"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/service"
)

type resources struct {
	store   service.Store
	entries service.EntryWriter
	conn    *clickhouse.Repository
	file    *filestore.Store
}

// openResources builds the chain store and, when mirroring is enabled, the entry writer. Both
// share one ClickHouse connection.
func openResources(cfg config, logger *zap.Logger) (*resources, error) {
	res := &resources{}

	if cfg.Store == storeClickhouse || cfg.MirrorEntries {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository(storeClickhouse))
		if err != nil {
			return nil, fmt.Errorf("init clickhouse repository: %w", err)
		}
		res.conn = repo
		if cfg.MirrorEntries {
			res.entries = repo
		}
	}

	switch cfg.Store {
	case storeClickhouse:
		res.store = res.conn
	default:
		store, err := filestore.NewStore(cfg.StorePath, metrics.NewRepository(storeFile))
		if err != nil {
			res.close(logger)
			return nil, fmt.Errorf("init file store: %w", err)
		}
		if err := store.Lock(); err != nil {
			res.close(logger)
			return nil, err
		}
		res.file = store
		res.store = store
	}

	logger.Info("chain store ready", zap.String("backend", cfg.Store), zap.String("location", res.store.Location()))
	return res, nil
}

func (r *resources) close(logger *zap.Logger) {
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			logger.Error("failed to release file store", zap.Error(err))
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			logger.Error("failed to close clickhouse connection", zap.Error(err))
		}
	}
}
