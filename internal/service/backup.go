package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/snapshot"
)

const backupLayout = "20060102_150405"

// ExportSnapshot writes the current chain to w in the persisted document layout.
func (s *LedgerService) ExportSnapshot(ctx context.Context, w io.Writer) error {
	if err := s.ready(); err != nil {
		return err
	}

	s.stateMu.RLock()
	snap := s.snapshotOf(s.chain)
	s.stateMu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := snapshot.Encode(w, snap); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	return nil
}

// CreateBackup writes the current chain to a timestamped file in the backup directory and
// returns its path. A numeric suffix is added when a backup with the same second exists.
func (s *LedgerService) CreateBackup(ctx context.Context) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if s.cfg.BackupDir == "" {
		return "", errors.New("backup directory is not configured")
	}

	s.stateMu.RLock()
	snap := s.snapshotOf(s.chain)
	s.stateMu.RUnlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.backupPath()
	if err != nil {
		return "", err
	}
	if err := snapshot.WriteFile(path, snap); err != nil {
		return "", &PersistenceError{Op: "backup", Location: path, Err: err}
	}

	s.logger.Info("backup created", zap.String("path", path), zap.Int("length", len(snap.Blocks)))
	return path, nil
}

func (s *LedgerService) backupPath() (string, error) {
	base := "blockchain_backup_" + s.cfg.Now().UTC().Format(backupLayout)
	path := filepath.Join(s.cfg.BackupDir, base+".json")
	for i := 1; ; i++ {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		path = filepath.Join(s.cfg.BackupDir, fmt.Sprintf("%s_%d.json", base, i))
	}
}
