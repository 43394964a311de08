// Package server exposes the analysis and suggestion workflows over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"QuoteBalance/internal/config"
	"QuoteBalance/internal/usecase"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Deps wires the use cases into the HTTP surface.
type Deps struct {
	Analyzer  *usecase.Analyzer
	Suggester *usecase.Suggester
	Logger    *slog.Logger
}

// Server owns the listener, routing and the access gate.
type Server struct {
	analyzer  *usecase.Analyzer
	suggester *usecase.Suggester
	logger    *slog.Logger
	users     map[string]string
	templates *template.Template
	http      *http.Server
}

// New builds the server from configuration. An empty users map disables
// the basic-auth gate entirely.
func New(cfg config.ServerConfig, deps Deps) (*Server, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		analyzer:  deps.Analyzer,
		suggester: deps.Suggester,
		logger:    deps.Logger,
		users:     cfg.Users,
		templates: templates,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/detect", s.handleDetect)
	mux.HandleFunc("/search", s.handleSearch)
	mux.Handle("/static/", http.FileServer(http.FS(staticFS)))

	s.http = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.requireAuth(s.logRequests(mux)),
		// /detect waits on the completion API, so the write timeout is
		// generous compared to the read side.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	return s, nil
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.info("listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the full middleware chain for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Server) errorLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
