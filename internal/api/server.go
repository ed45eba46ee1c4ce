// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihandler "github.com/newthinker/tradedeck/internal/api/handler/api"
	"github.com/newthinker/tradedeck/internal/api/middleware"
	"github.com/newthinker/tradedeck/internal/clipboard"
	"github.com/newthinker/tradedeck/internal/dashboard"
	"github.com/newthinker/tradedeck/internal/metrics"
	"github.com/newthinker/tradedeck/internal/symbols"
	"github.com/newthinker/tradedeck/internal/template"
)

// Server represents the tradedeck HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// Config holds server configuration
type Config struct {
	Host   string
	Port   int
	APIKey string
}

// Deps bundles the components the routes are built from.
type Deps struct {
	Templates     *template.Store
	Form          *template.Form
	Dashboard     *dashboard.State
	Symbols       *symbols.Client
	Clipboard     clipboard.Copier
	WebhookOrigin string
	Metrics       *metrics.Registry
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()

	s := &Server{
		logger: logger,
		mux:    mux,
	}
	s.setupRoutes(deps)

	// Health and metrics stay outside the API key so probes and scrapers
	// need no credentials.
	root := http.NewServeMux()
	root.HandleFunc("GET /api/health", s.handleHealth)
	if deps.Metrics != nil {
		root.Handle("GET /metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}
	root.Handle("/api/", middleware.APIKeyAuth(cfg.APIKey)(mux))

	var handler http.Handler = root
	if deps.Metrics != nil {
		handler = metrics.HTTPMiddleware(deps.Metrics)(handler)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(deps Deps) {
	templates := apihandler.NewTemplatesHandler(deps.Templates, deps.Metrics)
	payload := apihandler.NewPayloadHandler(deps.Form, deps.Clipboard, deps.WebhookOrigin, deps.Metrics)
	handoff := apihandler.NewHandoffHandler(deps.Templates, deps.Metrics)

	s.mux.HandleFunc("GET /api/templates", templates.List)
	s.mux.HandleFunc("POST /api/templates", templates.Save)
	s.mux.HandleFunc("GET /api/templates/{index}", templates.Load)
	s.mux.HandleFunc("DELETE /api/templates/{index}", templates.Delete)

	s.mux.HandleFunc("POST /api/payload", payload.Build)
	s.mux.HandleFunc("POST /api/payload/copy", payload.Copy)
	s.mux.HandleFunc("GET /api/webhook-url", payload.WebhookURL)

	s.mux.HandleFunc("POST /api/handoff", handoff.Write)
	s.mux.HandleFunc("POST /api/handoff/take", handoff.Take)

	if deps.Dashboard != nil {
		dash := apihandler.NewDashboardHandler(deps.Dashboard)
		s.mux.HandleFunc("GET /api/dashboard", dash.Get)
	}

	if deps.Symbols != nil {
		sym := apihandler.NewSymbolsHandler(deps.Symbols, deps.Templates, deps.Metrics)
		s.mux.HandleFunc("GET /api/symbols", sym.Search)
		s.mux.HandleFunc("POST /api/symbols/copy", sym.Copy)
	}
}

// Handler returns the full middleware-wrapped handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
