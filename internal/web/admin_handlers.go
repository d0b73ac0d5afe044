package web

import (
	"encoding/json"
	"net/http"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/store"
)

// handleLogs exposes the recorded activity to administrators. The default
// view is the action log; ?view=letters returns the per-property letter
// history instead. DELETE clears the action log.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	if currentUser(r).Role != auth.RoleAdmin {
		writeError(w, http.StatusForbidden, "admin access required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Get("view") == "letters" {
			history, err := s.activity.AllLetterHistory()
			if err != nil {
				writeError(w, http.StatusInternalServerError, "reading letter history")
				return
			}
			writeJSON(w, http.StatusOK, history)
			return
		}

		entries, err := s.activity.Entries()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "reading action logs")
			return
		}
		if entries == nil {
			entries = []activity.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)

	case http.MethodDelete:
		if err := s.activity.Clear(); err != nil {
			writeError(w, http.StatusInternalServerError, "clearing action logs")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type mapboxTokenBody struct {
	Token string `json:"token"`
}

// handleMapboxToken reads or updates the stored map tile credential. The
// value is opaque to the server; it is only held for the map client.
func (s *Server) handleMapboxToken(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		token, _, err := s.state.Get(store.KeyMapboxToken)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "reading token")
			return
		}
		writeJSON(w, http.StatusOK, mapboxTokenBody{Token: token})

	case http.MethodPut:
		if currentUser(r).Role != auth.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}

		var body mapboxTokenBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.state.Set(store.KeyMapboxToken, body.Token); err != nil {
			writeError(w, http.StatusInternalServerError, "storing token")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
