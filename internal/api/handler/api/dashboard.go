// internal/api/handler/api/dashboard.go
package api

import (
	"net/http"

	"github.com/newthinker/tradedeck/internal/api/response"
	"github.com/newthinker/tradedeck/internal/dashboard"
)

// SnapshotSource defines the interface needed from dashboard.State.
type SnapshotSource interface {
	Get() dashboard.Snapshot
}

// DashboardHandler serves the cached dashboard snapshot. It never calls
// the collaborator itself; the pollers keep the snapshot fresh.
type DashboardHandler struct {
	state SnapshotSource
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(state SnapshotSource) *DashboardHandler {
	return &DashboardHandler{state: state}
}

// Get returns the current snapshot.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.state.Get())
}
