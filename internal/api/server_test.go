// internal/api/server_test.go
package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newthinker/tradedeck/internal/dashboard"
	"github.com/newthinker/tradedeck/internal/metrics"
	"github.com/newthinker/tradedeck/internal/storage/kv"
	"github.com/newthinker/tradedeck/internal/template"
)

func newTestServer(apiKey string) *Server {
	store := template.NewStore(kv.NewMemory(), nil)
	return NewServer(
		Config{Host: "127.0.0.1", Port: 0, APIKey: apiKey},
		Deps{
			Templates: store,
			Form:      template.NewForm(store, nil),
			Dashboard: dashboard.NewState(),
			Metrics:   metrics.NewRegistry(),
		},
		nil,
	)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer("secret")

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("health must not require the API key, got %d", w.Code)
	}
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer("secret")

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("metrics must not require the API key, got %d", w.Code)
	}
}

func TestServer_APIRequiresKey(t *testing.T) {
	s := newTestServer("secret")

	req := httptest.NewRequest("GET", "/api/templates", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/templates", nil)
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with key, got %d", w.Code)
	}
}

func TestServer_Dashboard(t *testing.T) {
	s := newTestServer("")

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer("")

	req := httptest.NewRequest("GET", "/api/nonsense", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
