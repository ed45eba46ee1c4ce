package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newthinker/tradedeck/internal/core"
)

func collaboratorStub() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/accounts/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"acc1","status":"Active"},{"name":"acc2","status":"Token Expired"}]`))
	})
	mux.HandleFunc("/api/accounts/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_balance":150000.5,"total_positions":4,"total_pnl":2300.75}`))
	})
	mux.HandleFunc("/api/notifications", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":3}`))
	})
	return httptest.NewServer(mux)
}

func TestClient_FetchAccountStatus(t *testing.T) {
	srv := collaboratorStub()
	defer srv.Close()

	c := NewClient(srv.URL)
	statuses, err := c.FetchAccountStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchAccountStatus: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(statuses))
	}
	if !statuses[0].IsActive() || statuses[1].IsActive() {
		t.Errorf("unexpected statuses: %+v", statuses)
	}
}

func TestClient_FetchAccountSummary(t *testing.T) {
	srv := collaboratorStub()
	defer srv.Close()

	c := NewClient(srv.URL)
	summary, err := c.FetchAccountSummary(context.Background())
	if err != nil {
		t.Fatalf("FetchAccountSummary: %v", err)
	}
	if summary.TotalBalance != 150000.5 || summary.TotalPositions != 4 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestClient_FetchNotificationCount(t *testing.T) {
	srv := collaboratorStub()
	defer srv.Close()

	c := NewClient(srv.URL)
	count, err := c.FetchNotificationCount(context.Background())
	if err != nil {
		t.Fatalf("FetchNotificationCount: %v", err)
	}
	if count != 3 {
		t.Errorf("got %d, want 3", count)
	}
}

func TestClient_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchAccountStatus(context.Background())
	if !errors.Is(err, core.ErrRemoteFailed) {
		t.Errorf("expected ErrRemoteFailed, got %v", err)
	}
}

func TestService_RefreshSurvivesFailure(t *testing.T) {
	srv := collaboratorStub()
	c := NewClient(srv.URL)
	svc := NewService(c, nil)

	svc.RefreshDashboard(context.Background())
	svc.RefreshNotifications(context.Background())

	snap := svc.State().Get()
	if snap.ActiveAccounts != "1/2" {
		t.Errorf("active accounts: got %q", snap.ActiveAccounts)
	}
	if snap.NotificationCount != 3 {
		t.Errorf("notifications: got %d", snap.NotificationCount)
	}

	// Collaborator goes away; cached figures must survive the next tick.
	srv.Close()
	svc.RefreshDashboard(context.Background())

	snap = svc.State().Get()
	if snap.ActiveAccounts != "1/2" {
		t.Errorf("stale display lost after failed tick: %q", snap.ActiveAccounts)
	}
}
