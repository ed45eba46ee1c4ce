// internal/api/handler/api/templates.go
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/newthinker/tradedeck/internal/api/response"
	"github.com/newthinker/tradedeck/internal/core"
	"github.com/newthinker/tradedeck/internal/metrics"
	"github.com/newthinker/tradedeck/internal/template"
)

// TemplatesHandler handles template CRUD requests. Templates are addressed
// by position; clients re-fetch the list after every mutation.
type TemplatesHandler struct {
	store   *template.Store
	metrics *metrics.Registry
}

// NewTemplatesHandler creates a new templates handler.
func NewTemplatesHandler(store *template.Store, reg *metrics.Registry) *TemplatesHandler {
	return &TemplatesHandler{store: store, metrics: reg}
}

// SaveRequest is the request body for saving a template.
type SaveRequest struct {
	Name string         `json:"name"`
	Form core.FormState `json:"form"`
}

// List returns all saved templates in order.
func (h *TemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	templates := h.store.List(r.Context())
	if h.metrics != nil {
		h.metrics.SetTemplatesStored(len(templates))
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"templates": templates,
		"count":     len(templates),
	})
}

// Save appends a template snapshotted from the submitted form values.
func (h *TemplatesHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, err))
		return
	}

	if err := h.store.Save(r.Context(), req.Name, req.Form); err != nil {
		h.recordOp("save", "error")
		response.Error(w, statusForError(err), err)
		return
	}
	h.recordOp("save", "success")

	templates := h.store.List(r.Context())
	if h.metrics != nil {
		h.metrics.SetTemplatesStored(len(templates))
	}
	response.JSON(w, http.StatusCreated, map[string]any{
		"name":  req.Name,
		"count": len(templates),
	})
}

// Load returns the template at the index in the path.
func (h *TemplatesHandler) Load(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	tpl, err := h.store.Load(r.Context(), index)
	if err != nil {
		h.recordOp("load", "error")
		response.Error(w, statusForError(err), err)
		return
	}
	h.recordOp("load", "success")

	response.JSON(w, http.StatusOK, tpl)
}

// Delete removes the template at the index in the path. The DELETE request
// itself is the confirmation; the browser dialog happened client-side.
func (h *TemplatesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	confirm := template.ConfirmFunc(func(string) bool { return true })
	if err := h.store.Delete(r.Context(), index, confirm); err != nil {
		h.recordOp("delete", "error")
		response.Error(w, statusForError(err), err)
		return
	}
	h.recordOp("delete", "success")

	templates := h.store.List(r.Context())
	if h.metrics != nil {
		h.metrics.SetTemplatesStored(len(templates))
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"index":   index,
		"deleted": true,
		"count":   len(templates),
	})
}

func (h *TemplatesHandler) recordOp(operation, status string) {
	if h.metrics != nil {
		h.metrics.RecordTemplateOp(operation, status)
	}
}

// pathIndex parses the {index} path segment.
func pathIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, core.WrapError(core.ErrValidation, err)
	}
	return index, nil
}
