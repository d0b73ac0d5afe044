package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/property"
	"github.com/jmorel/prospec/internal/template"
)

type letterRequest struct {
	TemplateID string `json:"templateId"`
	// HTMLContent, when set, is used instead of the stored template body.
	// It lets callers preview edits before saving them.
	HTMLContent string `json:"htmlContent"`
}

// handleLetterGenerate produces the letter PDF for a property and records
// the generation in the activity logs and the property's letter history.
func (s *Server) handleLetterGenerate(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	prop := property.FindByID(s.visibleProperties(r), id)
	if prop == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}

	var req letterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateID == "" {
		req.TemplateID = template.DefaultID
	}

	tmpl, err := s.templates.Get(req.TemplateID)
	if err != nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	content := tmpl.HTMLContent
	if req.HTMLContent != "" {
		content = req.HTMLContent
	}

	// Render into a buffer first so a renderer failure still gets a clean
	// JSON error instead of a half-written PDF body.
	var buf bytes.Buffer
	if err := s.letters.PDF(content, prop, &buf); err != nil {
		slog.Error("generating letter", "property", prop.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "generating letter")
		return
	}

	user := currentUser(r)
	details := map[string]interface{}{
		"propertyId": prop.ID,
		"templateId": tmpl.ID,
	}
	if err := s.activity.Log(user.Email, activity.ActionPDFGenerated, details); err != nil {
		slog.Warn("recording pdf generation", "error", err)
	}
	if err := s.activity.Log(user.Email, activity.ActionTemplateUsed, details); err != nil {
		slog.Warn("recording template use", "error", err)
	}
	if err := s.activity.LogLetter(prop.ID, tmpl.ID, tmpl.Name, user.Email); err != nil {
		slog.Warn("recording letter history", "error", err)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="courrier.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("writing pdf response", "error", err)
	}
}

// handleLetterHistory returns the letter generations recorded for a
// property, oldest first.
func (s *Server) handleLetterHistory(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if property.FindByID(s.visibleProperties(r), id) == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}

	entries, err := s.activity.LetterHistory(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading letter history")
		return
	}
	if entries == nil {
		entries = []activity.LetterEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
