// internal/dashboard/state.go
package dashboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/newthinker/tradedeck/internal/core"
)

// Snapshot is the cached dashboard view handed to the API layer. RefreshID
// changes on every applied update so consumers can cheaply detect staleness.
type Snapshot struct {
	RefreshID         string               `json:"refresh_id"`
	ActiveAccounts    string               `json:"active_accounts"`
	Accounts          []core.AccountStatus `json:"accounts"`
	TotalBalance      string               `json:"total_balance"`
	TotalPositions    int                  `json:"total_positions"`
	TotalPnL          string               `json:"total_pnl"`
	PnLPositive       bool                 `json:"pnl_positive"`
	NotificationCount int                  `json:"notification_count"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// State holds the latest dashboard figures. Failed fetches never clear it:
// a stale display beats an empty one.
type State struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewState creates an empty dashboard state.
func NewState() *State {
	return &State{
		snapshot: Snapshot{
			ActiveAccounts: "0/0",
			TotalBalance:   FormatRupees(0),
			TotalPnL:       FormatRupees(0),
			PnLPositive:    true,
		},
	}
}

// ApplyStatus updates the active/total account tally.
func (s *State) ApplyStatus(statuses []core.AccountStatus) {
	active := 0
	for _, st := range statuses {
		if st.IsActive() {
			active++
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Accounts = statuses
	s.snapshot.ActiveAccounts = fmt.Sprintf("%d/%d", active, len(statuses))
	s.touch()
}

// ApplySummary updates balance, position count and P&L. Zero is "positive":
// the original card flips to red only below zero.
func (s *State) ApplySummary(summary core.AccountSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.TotalBalance = FormatRupees(summary.TotalBalance)
	s.snapshot.TotalPositions = summary.TotalPositions
	s.snapshot.TotalPnL = FormatRupees(summary.TotalPnL)
	s.snapshot.PnLPositive = summary.TotalPnL >= 0
	s.touch()
}

// ApplyNotifications updates the notification badge count.
func (s *State) ApplyNotifications(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.NotificationCount = count
	s.touch()
}

// Get returns a copy of the current snapshot.
func (s *State) Get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Accounts = make([]core.AccountStatus, len(s.snapshot.Accounts))
	copy(snap.Accounts, s.snapshot.Accounts)
	return snap
}

func (s *State) touch() {
	s.snapshot.RefreshID = uuid.NewString()
	s.snapshot.UpdatedAt = time.Now()
}
