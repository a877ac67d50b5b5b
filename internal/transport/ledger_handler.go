// Package transport exposes the read-only ledger queries over HTTP.
package transport

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	"github.com/goodnatureofminers/coffeeledger-backend/internal/model"
	"github.com/goodnatureofminers/coffeeledger-backend/internal/service"
)

const defaultQueryTimeout = 30 * time.Second

// LedgerHandler serves the ledger queries.
type LedgerHandler struct {
	ledger    Ledger
	logger    *zap.Logger
	marshaler gwruntime.Marshaler
	timeout   time.Duration
}

// NewLedgerHandler returns a LedgerHandler instance.
func NewLedgerHandler(ledger Ledger, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger:    ledger,
		logger:    logger.Named("ledger_handler"),
		marshaler: &gwruntime.JSONBuiltin{},
		timeout:   defaultQueryTimeout,
	}
}

// NewServeMux builds a gateway mux with every ledger route registered.
func NewServeMux(h *LedgerHandler) (*gwruntime.ServeMux, error) {
	mux := gwruntime.NewServeMux(
		gwruntime.WithUnescapingMode(gwruntime.UnescapingModeAllExceptReserved),
	)
	if err := h.Register(mux); err != nil {
		return nil, err
	}
	return mux, nil
}

// Register adds the ledger routes to mux.
func (h *LedgerHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{"/api/v1/entries", h.entries},
		{"/api/v1/entries/batch/{batch_id}", h.entriesByBatch},
		{"/api/v1/entries/origin/{origin}", h.entriesByOrigin},
		{"/api/v1/blockchain/info", h.info},
		{"/api/v1/blockchain/validate", h.validate},
		{"/api/v1/blockchain/export", h.export},
		{"/api/v1/health", h.health},
	}
	for _, r := range routes {
		if err := mux.HandlePath(http.MethodGet, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

type entriesResponse struct {
	Entries []model.BlockView `json:"entries"`
	Count   int               `json:"count"`
}

type validationResponse struct {
	Valid            bool    `json:"valid"`
	FirstBadPosition *uint64 `json:"firstBadPosition,omitempty"`
	Invariant        string  `json:"invariant,omitempty"`
	Detail           string  `json:"detail,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
	Length int    `json:"length"`
	Valid  bool   `json:"valid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *LedgerHandler) entries(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.serveEntries(w, r, func(ctx context.Context) ([]model.BlockView, error) {
		return h.ledger.GetAll(ctx)
	})
}

func (h *LedgerHandler) entriesByBatch(w http.ResponseWriter, r *http.Request, params map[string]string) {
	h.serveEntries(w, r, func(ctx context.Context) ([]model.BlockView, error) {
		return h.ledger.GetByBatch(ctx, params["batch_id"])
	})
}

func (h *LedgerHandler) entriesByOrigin(w http.ResponseWriter, r *http.Request, params map[string]string) {
	h.serveEntries(w, r, func(ctx context.Context) ([]model.BlockView, error) {
		return h.ledger.GetByOrigin(ctx, params["origin"])
	})
}

func (h *LedgerHandler) serveEntries(w http.ResponseWriter, r *http.Request, query func(context.Context) ([]model.BlockView, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	blocks, err := query(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, http.StatusOK, entriesResponse{Entries: blocks, Count: len(blocks)})
}

func (h *LedgerHandler) info(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	info, err := h.ledger.Info(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, http.StatusOK, info)
}

func (h *LedgerHandler) validate(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	v, err := h.ledger.ValidateChain(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := validationResponse{Valid: v.Valid, FirstBadPosition: v.FirstBadPosition}
	if v.Err != nil {
		resp.Invariant = string(v.Err.Invariant)
		resp.Detail = v.Err.Detail
	}
	h.write(w, http.StatusOK, resp)
}

// export writes the chain document as a download. It is buffered so a failed export still gets
// an error status.
func (h *LedgerHandler) export(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var buf bytes.Buffer
	if err := h.ledger.ExportSnapshot(ctx, &buf); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="blockchain.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("snapshot not written", zap.Error(err))
	}
}

func (h *LedgerHandler) health(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	info, err := h.ledger.Info(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := healthResponse{Status: "healthy", Length: info.Length, Valid: info.Valid}
	code := http.StatusOK
	if !info.Valid {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	h.write(w, code, resp)
}

func (h *LedgerHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := codeOf(err)
	if code == codes.Internal {
		h.logger.Error("ledger query failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.write(w, gwruntime.HTTPStatusFromCode(code), errorResponse{Error: err.Error()})
}

func (h *LedgerHandler) write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(status)
	if err := h.marshaler.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("response not written", zap.Error(err))
	}
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, service.ErrNotInitialized):
		return codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}
