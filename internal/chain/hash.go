// Package chain implements block sealing, proof-of-work and chain integrity validation.
package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
)

// header is the canonical prefix of a block encoding. Field order is fixed by the struct; the
// payload map is emitted with sorted keys by encoding/json.
type header struct {
	Position     uint64        `json:"position"`
	CreatedAt    string        `json:"createdAt"`
	Payload      model.Payload `json:"payload"`
	PreviousHash string        `json:"previousHash"`
}

// sealer holds the canonical bytes of a block up to its nonce.
type sealer struct {
	prefix []byte
	buf    []byte
}

func newSealer(b model.Block) (*sealer, error) {
	data, err := json.Marshal(header{
		Position:     b.Position,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339Nano),
		Payload:      b.Payload,
		PreviousHash: b.PreviousHash,
	})
	if err != nil {
		return nil, fmt.Errorf("encode block %d: %w", b.Position, err)
	}
	// {"position":..,"previousHash":".."} -> {"position":..,"previousHash":"..","nonce":
	prefix := make([]byte, 0, len(data)+len(`,"nonce":`))
	prefix = append(prefix, data[:len(data)-1]...)
	prefix = append(prefix, `,"nonce":`...)
	return &sealer{prefix: prefix, buf: make([]byte, 0, len(prefix)+24)}, nil
}

// canonical returns the full canonical encoding for nonce. The returned slice is reused by the
// next call.
func (s *sealer) canonical(nonce uint64) []byte {
	s.buf = append(s.buf[:0], s.prefix...)
	s.buf = strconv.AppendUint(s.buf, nonce, 10)
	s.buf = append(s.buf, '}')
	return s.buf
}

func (s *sealer) digest(nonce uint64) [sha256.Size]byte {
	return sha256.Sum256(s.canonical(nonce))
}

// Canonical returns the canonical byte encoding of b that its hash is computed over.
func Canonical(b model.Block) ([]byte, error) {
	s, err := newSealer(b)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), s.canonical(b.Nonce)...), nil
}

// ComputeHash returns the lowercase hex SHA-256 digest of the canonical encoding of b.
func ComputeHash(b model.Block) (string, error) {
	s, err := newSealer(b)
	if err != nil {
		return "", err
	}
	sum := s.digest(b.Nonce)
	return hex.EncodeToString(sum[:]), nil
}

// leadingZeroNibbles reports whether the hex rendering of sum starts with n '0' characters.
func leadingZeroNibbles(sum [sha256.Size]byte, n int) bool {
	for i := 0; i < n; i++ {
		b := sum[i/2]
		if i%2 == 0 {
			b >>= 4
		}
		if b&0x0f != 0 {
			return false
		}
	}
	return true
}

// MeetsDifficulty reports whether the hex digest h starts with difficulty '0' characters.
func MeetsDifficulty(h string, difficulty int) bool {
	if len(h) < difficulty {
		return false
	}
	for i := 0; i < difficulty; i++ {
		if h[i] != '0' {
			return false
		}
	}
	return true
}
