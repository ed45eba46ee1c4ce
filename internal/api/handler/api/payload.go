// internal/api/handler/api/payload.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/newthinker/tradedeck/internal/api/response"
	"github.com/newthinker/tradedeck/internal/clipboard"
	"github.com/newthinker/tradedeck/internal/core"
	"github.com/newthinker/tradedeck/internal/metrics"
	"github.com/newthinker/tradedeck/internal/template"
)

// PayloadHandler handles payload generation requests.
type PayloadHandler struct {
	form    *template.Form
	copier  clipboard.Copier
	origin  string
	metrics *metrics.Registry
}

// NewPayloadHandler creates a new payload handler. origin is the webhook
// endpoint base; copier may be a Noop when no clipboard is available.
func NewPayloadHandler(form *template.Form, copier clipboard.Copier, origin string, reg *metrics.Registry) *PayloadHandler {
	if copier == nil {
		copier = clipboard.Noop{}
	}
	return &PayloadHandler{form: form, copier: copier, origin: origin, metrics: reg}
}

// BuildResult is the response body for a successful build.
type BuildResult struct {
	Payload          core.WebhookPayload `json:"payload"`
	Display          string              `json:"display"`
	ShowTriggerPrice bool                `json:"show_trigger_price"`
	Warnings         []string            `json:"warnings,omitempty"`
}

// Build fills the form from the request body and generates the payload.
func (h *PayloadHandler) Build(w http.ResponseWriter, r *http.Request) {
	var state core.FormState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, err))
		return
	}

	h.form.SetState(state)

	payload, warnings, err := h.form.Build()
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordPayloadBuilt("error")
		}
		response.Error(w, statusForError(err), err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordPayloadBuilt("success")
	}

	response.JSON(w, http.StatusOK, BuildResult{
		Payload:          payload,
		Display:          h.form.DisplayText(),
		ShowTriggerPrice: h.form.TriggerPriceVisible(),
		Warnings:         warnings,
	})
}

// Copy puts the rendered payload text on the clipboard. Clipboard trouble
// is reported in the body, never as an error status; the text is still on
// screen for a manual copy.
func (h *PayloadHandler) Copy(w http.ResponseWriter, r *http.Request) {
	text := h.form.DisplayText()
	if text == "" {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, nil))
		return
	}

	copied := true
	if err := h.copier.Copy(text); err != nil {
		copied = false
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"copied": copied,
	})
}

// WebhookURL returns the webhook endpoint URL and copies it.
func (h *PayloadHandler) WebhookURL(w http.ResponseWriter, r *http.Request) {
	url := template.WebhookURL(h.origin)

	copied := true
	if err := h.copier.Copy(url); err != nil {
		copied = false
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"url":    url,
		"copied": copied,
	})
}
