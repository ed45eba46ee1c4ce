// internal/api/handler/api/errors.go
package api

import (
	"errors"
	"net/http"

	"github.com/newthinker/tradedeck/internal/core"
)

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrQueryTooShort):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrRemoteFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
