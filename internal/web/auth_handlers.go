package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/letter"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin validates credentials and issues a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.login.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login unavailable")
		return
	}

	if !result.Success {
		writeJSON(w, http.StatusUnauthorized, result)
		return
	}

	if err := s.activity.Log(result.User.Email, activity.ActionLogin, nil); err != nil {
		slog.Warn("recording login", "error", err)
	}

	writeJSON(w, http.StatusOK, result)
}

// handleLogout ends the session. With an unverifiable token there is
// nothing server-side to revoke beyond any persisted session state.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleMe returns the identified user.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r))
}

// handleVariables returns the template variable catalog.
func (s *Server) handleVariables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, letter.Variables)
}
