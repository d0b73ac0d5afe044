// Package web provides the JSON API server for prospec.
package web

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/letter"
	"github.com/jmorel/prospec/internal/logging"
	"github.com/jmorel/prospec/internal/property"
	"github.com/jmorel/prospec/internal/store"
	"github.com/jmorel/prospec/internal/template"
)

// Server is the prospec API server.
type Server struct {
	props     []*property.Property
	templates *template.Store
	login     *auth.Service
	state     *store.Store
	activity  *activity.Logger
	letters   *letter.Generator
	mux       *http.ServeMux
}

// NewServer creates an API server over an open database and property set.
func NewServer(db *sql.DB, props []*property.Property, agent letter.Agent) (*Server, error) {
	templates, err := template.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("opening template store: %w", err)
	}

	state := store.New(db)

	s := &Server{
		props:     props,
		templates: templates,
		login:     auth.NewService(),
		state:     state,
		activity:  activity.NewLogger(state),
		letters:   letter.NewGenerator(agent, letter.NewPDFRenderer()),
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/login", s.handleLogin)
	s.mux.HandleFunc("/api/logout", s.requireUser(s.handleLogout))
	s.mux.HandleFunc("/api/me", s.requireUser(s.handleMe))
	s.mux.HandleFunc("/api/variables", s.requireUser(s.handleVariables))
	s.mux.HandleFunc("/api/properties", s.requireUser(s.handlePropertyList))
	s.mux.HandleFunc("/api/properties/", s.requireUser(s.handlePropertyRoute))
	s.mux.HandleFunc("/api/map", s.requireUser(s.handleMap))
	s.mux.HandleFunc("/api/templates", s.requireUser(s.handleTemplates))
	s.mux.HandleFunc("/api/templates/", s.requireUser(s.handleTemplateRoute))
	s.mux.HandleFunc("/api/logs", s.requireUser(s.handleLogs))
	s.mux.HandleFunc("/api/settings/mapbox-token", s.requireUser(s.handleMapboxToken))

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logging.RequestLogger(s.mux).ServeHTTP(w, r)
}

// ListenAndServe starts the API server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting API server", "addr", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
