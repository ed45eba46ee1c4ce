// internal/api/handler/api/handoff.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/newthinker/tradedeck/internal/api/response"
	"github.com/newthinker/tradedeck/internal/core"
	"github.com/newthinker/tradedeck/internal/metrics"
	"github.com/newthinker/tradedeck/internal/template"
)

// HandoffHandler handles the one-shot handoff slot. A write replaces any
// previous occupant; a take empties the slot whether or not a payload
// came out of it.
type HandoffHandler struct {
	store   *template.Store
	metrics *metrics.Registry
}

// NewHandoffHandler creates a new handoff handler.
func NewHandoffHandler(store *template.Store, reg *metrics.Registry) *HandoffHandler {
	return &HandoffHandler{store: store, metrics: reg}
}

// Write stores a payload in the handoff slot.
func (h *HandoffHandler) Write(w http.ResponseWriter, r *http.Request) {
	var payload core.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, err))
		return
	}

	if err := h.store.WriteHandoff(r.Context(), payload); err != nil {
		response.Error(w, statusForError(err), err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordHandoffWrite()
	}

	response.JSON(w, http.StatusCreated, map[string]any{
		"written": true,
	})
}

// Take consumes the handoff slot.
func (h *HandoffHandler) Take(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.store.TakeHandoff(r.Context())
	if h.metrics != nil {
		if ok {
			h.metrics.RecordHandoffTake("applied")
		} else {
			h.metrics.RecordHandoffTake("empty")
		}
	}

	if !ok {
		response.JSON(w, http.StatusOK, map[string]any{
			"taken": false,
		})
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"taken":   true,
		"payload": payload,
	})
}
