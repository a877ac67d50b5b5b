// Package snapshot encodes the ledger document shared by the file store, backups, exports and
// the offline verifier.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

// ErrCorrupt is returned when a document cannot be parsed or is internally inconsistent.
var ErrCorrupt = errors.New("snapshot is corrupt")

// document is the on-disk layout.
type document struct {
	Chain       []model.Block `json:"chain"`
	Length      int           `json:"length"`
	Difficulty  int           `json:"difficulty"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// Encode writes s as an indented JSON document.
func Encode(w io.Writer, s model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{
		Chain:       s.Blocks,
		Length:      len(s.Blocks),
		Difficulty:  s.Difficulty,
		LastUpdated: s.LastUpdated.UTC(),
	}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Decode parses a document. Structural problems are reported as ErrCorrupt; chain integrity is
// left to the caller.
func Decode(r io.Reader) (model.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (model.Snapshot, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if dec.More() {
		return model.Snapshot{}, fmt.Errorf("%w: trailing data", ErrCorrupt)
	}
	if len(doc.Chain) == 0 {
		return model.Snapshot{}, fmt.Errorf("%w: empty chain", ErrCorrupt)
	}
	if doc.Length != len(doc.Chain) {
		return model.Snapshot{}, fmt.Errorf("%w: length %d does not match %d blocks", ErrCorrupt, doc.Length, len(doc.Chain))
	}
	return model.Snapshot{
		Blocks:      doc.Chain,
		Difficulty:  doc.Difficulty,
		LastUpdated: doc.LastUpdated,
	}, nil
}

// ReadFile loads a document from path. A missing file is reported with an error matching
// os.ErrNotExist.
func ReadFile(path string) (model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, err
	}
	return decode(data)
}

// WriteFile replaces path with the encoded snapshot. The document is written to a temporary
// file in the same directory, synced and renamed over path, so readers see either the old or
// the new document.
func WriteFile(path string, s model.Snapshot) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, s); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp.Name(), err)
	}
	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open directory %s: %w", dir, err)
	}
	defer d.Close()
	// some filesystems refuse fsync on directories
	if err := d.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return fmt.Errorf("sync directory %s: %w", dir, err)
	}
	return nil
}
