// Package web serves the browser UI. Pages are plain html/template
// renders; htmx swaps the todo list fragment in place on mutations so
// the page never fully reloads.
package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
)

// Server handles HTTP traffic for the todo UI
type Server struct {
	app *app.App
	db  *sqlx.DB
	cfg config.ServerConfig
	log *slog.Logger
	mux *http.ServeMux
}

// NewServer creates a Server with all routes registered. The raw
// database handle is only used by the readiness probe.
func NewServer(a *app.App, db *sqlx.DB, cfg config.ServerConfig) *Server {
	s := &Server{
		app: a,
		db:  db,
		cfg: cfg,
		log: slog.Default(),
		mux: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.HandleFunc("GET /readyz", s.handleReadyz)
	s.mux.HandleFunc("GET /assets/htmx.js", s.handleHTMX)

	s.mux.HandleFunc("POST /todos", s.handleCreate)
	s.mux.HandleFunc("GET /todos/{id}/edit", s.handleEditForm)
	s.mux.HandleFunc("PUT /todos/{id}", s.handleUpdate)
	s.mux.HandleFunc("POST /todos/{id}/toggle", s.handleToggle)
	s.mux.HandleFunc("DELETE /todos/{id}", s.handleDelete)
}

// Handler returns the full middleware chain. Recovery sits innermost so
// the access log still records the 500 it writes.
func (s *Server) Handler() http.Handler {
	return withRequestID(withAccessLog(s.log, withRecovery(s.log, s.mux)))
}

// Addr returns the host:port the server should listen on
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}
