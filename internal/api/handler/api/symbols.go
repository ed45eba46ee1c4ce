// internal/api/handler/api/symbols.go
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/newthinker/tradedeck/internal/api/response"
	"github.com/newthinker/tradedeck/internal/core"
	"github.com/newthinker/tradedeck/internal/metrics"
	"github.com/newthinker/tradedeck/internal/symbols"
	"github.com/newthinker/tradedeck/internal/template"
)

// SymbolSearcher defines the interface needed from symbols.Client.
type SymbolSearcher interface {
	Search(ctx context.Context, exchange, query string) ([]core.SymbolResult, error)
}

// SymbolsHandler handles symbol search and the copy-to-webhook flow.
type SymbolsHandler struct {
	searcher SymbolSearcher
	store    *template.Store
	metrics  *metrics.Registry
}

// NewSymbolsHandler creates a new symbols handler.
func NewSymbolsHandler(searcher SymbolSearcher, store *template.Store, reg *metrics.Registry) *SymbolsHandler {
	return &SymbolsHandler{searcher: searcher, store: store, metrics: reg}
}

// Search proxies a symbol search to the account manager.
func (h *SymbolsHandler) Search(w http.ResponseWriter, r *http.Request) {
	exchange := r.URL.Query().Get("exchange")
	query := r.URL.Query().Get("query")

	results, err := h.searcher.Search(r.Context(), exchange, query)
	if err != nil {
		h.recordSearch(exchange, "error")
		response.Error(w, statusForError(err), err)
		return
	}
	h.recordSearch(exchange, "success")

	response.JSON(w, http.StatusOK, map[string]any{
		"symbols": results,
		"count":   len(results),
	})
}

// Copy writes a prefilled payload for the chosen result into the handoff
// slot, ready for the generator to pick up.
func (h *SymbolsHandler) Copy(w http.ResponseWriter, r *http.Request) {
	var result core.SymbolResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, err))
		return
	}

	payload := symbols.CopyToWebhook(result)
	if err := h.store.WriteHandoff(r.Context(), payload); err != nil {
		response.Error(w, statusForError(err), err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordHandoffWrite()
	}

	response.JSON(w, http.StatusCreated, map[string]any{
		"symbol":  payload.Symbol,
		"written": true,
	})
}

func (h *SymbolsHandler) recordSearch(exchange, status string) {
	if h.metrics != nil {
		h.metrics.RecordSymbolSearch(exchange, status)
	}
}
