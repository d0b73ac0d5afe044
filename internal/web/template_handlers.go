package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmorel/prospec/internal/template"
)

// handleTemplates lists templates or creates a new one.
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		templates, err := s.templates.List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading templates")
			return
		}
		if templates == nil {
			templates = []*template.LetterTemplate{}
		}
		writeJSON(w, http.StatusOK, templates)

	case http.MethodPost:
		var t template.LetterTemplate
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		t.CreatedBy = currentUser(r).Email

		created, err := s.templates.Create(t)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleTemplateRoute routes /api/templates/{id}[/duplicate] requests.
func (s *Server) handleTemplateRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/templates/")

	if id, ok := strings.CutSuffix(path, "/duplicate"); ok {
		s.handleTemplateDuplicate(w, r, id)
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := s.templates.Get(path)
		if err != nil {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		writeJSON(w, http.StatusOK, t)

	case http.MethodPut:
		var t template.LetterTemplate
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		t.ID = path

		updated, err := s.templates.Update(t)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.templates.Delete(path); err != nil {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleTemplateDuplicate(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dup, err := s.templates.Duplicate(id, currentUser(r).Email)
	if err != nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusCreated, dup)
}
