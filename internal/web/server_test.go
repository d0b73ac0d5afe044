package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/db"
	"github.com/jmorel/prospec/internal/letter"
	"github.com/jmorel/prospec/internal/property"
	"github.com/jmorel/prospec/internal/template"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "prospec.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("closing database: %v", err)
		}
	})

	agent := letter.Agent{Name: "Jean Martin", Phone: "0612345678", Email: "jean.martin@agence.fr"}
	srv, err := NewServer(database, property.Demo(), agent)
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	return srv
}

func adminToken(t *testing.T) string {
	t.Helper()
	user, ok := auth.UserByEmail("admin@example.com")
	if !ok {
		t.Fatal("admin demo account missing")
	}
	return auth.EncodeToken(user, time.Now())
}

func userToken(t *testing.T) string {
	t.Helper()
	user, ok := auth.UserByEmail("user@example.com")
	if !ok {
		t.Fatal("user demo account missing")
	}
	return auth.EncodeToken(user, time.Now())
}

func doRequest(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/properties", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	w = doRequest(t, srv, http.MethodGet, "/api/properties", "not-base64!", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with garbage token, got %d", w.Code)
	}
}

func TestPropertyListAccess(t *testing.T) {
	srv := newTestServer(t)

	var props []*property.Property
	w := doRequest(t, srv, http.MethodGet, "/api/properties", adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &props)
	if len(props) != 5 {
		t.Errorf("admin should see 5 properties, got %d", len(props))
	}

	props = nil
	w = doRequest(t, srv, http.MethodGet, "/api/properties", userToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &props)
	// Property 5 has no section, so the sectioned user never sees it.
	if len(props) != 4 {
		t.Errorf("sectioned user should see 4 properties, got %d", len(props))
	}
	for _, p := range props {
		if p.ID == "5" {
			t.Error("property outside allowed sections leaked into list")
		}
	}
}

func TestPropertyListFilters(t *testing.T) {
	srv := newTestServer(t)

	var props []*property.Property
	w := doRequest(t, srv, http.MethodGet, "/api/properties?minPrice=500000", adminToken(t), nil)
	decodeBody(t, w, &props)
	if len(props) != 2 {
		t.Errorf("expected 2 properties above 500000, got %d", len(props))
	}

	w = doRequest(t, srv, http.MethodGet, "/api/properties?minPrice=abc", adminToken(t), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad filter value, got %d", w.Code)
	}
}

func TestPropertyDetail(t *testing.T) {
	srv := newTestServer(t)

	var prop property.Property
	w := doRequest(t, srv, http.MethodGet, "/api/properties/3", adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &prop)
	if prop.Reference != "PRO-2023-003" {
		t.Errorf("expected PRO-2023-003, got %s", prop.Reference)
	}

	// The view is recorded in the activity log.
	var entries []activity.Entry
	w = doRequest(t, srv, http.MethodGet, "/api/logs", adminToken(t), nil)
	decodeBody(t, w, &entries)
	if len(entries) != 1 || entries[0].Action != activity.ActionPropertyViewed {
		t.Errorf("expected one property_viewed entry, got %+v", entries)
	}

	// Properties outside the user's sections are invisible, not forbidden.
	w = doRequest(t, srv, http.MethodGet, "/api/properties/5", userToken(t), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for out-of-section property, got %d", w.Code)
	}
}

func TestMap(t *testing.T) {
	srv := newTestServer(t)

	var fc struct {
		Type     string       `json:"type"`
		Features []geoFeature `json:"features"`
	}
	w := doRequest(t, srv, http.MethodGet, "/api/map", adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &fc)
	if fc.Type != "FeatureCollection" {
		t.Errorf("expected FeatureCollection, got %s", fc.Type)
	}
	// Property 5 has no coordinates and is skipped.
	if len(fc.Features) != 4 {
		t.Errorf("expected 4 features, got %d", len(fc.Features))
	}
	for _, f := range fc.Features {
		if f.Geometry.Coordinates[0] == 0 || f.Geometry.Coordinates[1] == 0 {
			t.Errorf("feature %v has zero coordinates", f.Properties["id"])
		}
	}
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	var result auth.Result
	w := doRequest(t, srv, http.MethodPost, "/api/login", "",
		map[string]string{"email": "admin@example.com", "password": "password"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &result)
	if !result.Success || result.Token == "" || result.User == nil {
		t.Errorf("expected successful login with token and user, got %+v", result)
	}

	w = doRequest(t, srv, http.MethodPost, "/api/login", "",
		map[string]string{"email": "admin@example.com", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	decodeBody(t, w, &result)
	if result.Error != "invalid credentials" {
		t.Errorf("expected generic error, got %q", result.Error)
	}
}

func TestMe(t *testing.T) {
	srv := newTestServer(t)

	var user auth.User
	w := doRequest(t, srv, http.MethodGet, "/api/me", userToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &user)
	if user.Email != "user@example.com" || len(user.Sections) != 2 {
		t.Errorf("unexpected user projection: %+v", user)
	}
}

func TestVariables(t *testing.T) {
	srv := newTestServer(t)

	var vars []letter.Variable
	w := doRequest(t, srv, http.MethodGet, "/api/variables", userToken(t), nil)
	decodeBody(t, w, &vars)
	if len(vars) != len(letter.Variables) {
		t.Errorf("expected %d variables, got %d", len(letter.Variables), len(vars))
	}
}

func TestTemplateCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := adminToken(t)

	var list []*template.LetterTemplate
	w := doRequest(t, srv, http.MethodGet, "/api/templates", token, nil)
	decodeBody(t, w, &list)
	if len(list) != 5 {
		t.Fatalf("expected 5 seeded templates, got %d", len(list))
	}

	var created template.LetterTemplate
	w = doRequest(t, srv, http.MethodPost, "/api/templates", token, template.LetterTemplate{
		Name:        "Relance express",
		Type:        template.KindFollowUp,
		HTMLContent: "<p>Bonjour {{nom_proprietaire}}</p>",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &created)
	if created.ID == "" || created.CreatedBy != "admin@example.com" {
		t.Errorf("unexpected created template: %+v", created)
	}

	w = doRequest(t, srv, http.MethodPost, "/api/templates", token,
		template.LetterTemplate{Type: template.KindOffer})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for nameless template, got %d", w.Code)
	}

	created.Name = "Relance renommée"
	var updated template.LetterTemplate
	w = doRequest(t, srv, http.MethodPut, "/api/templates/"+created.ID, token, created)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &updated)
	if updated.Name != "Relance renommée" {
		t.Errorf("expected renamed template, got %q", updated.Name)
	}

	var dup template.LetterTemplate
	w = doRequest(t, srv, http.MethodPost, "/api/templates/"+created.ID+"/duplicate", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	decodeBody(t, w, &dup)
	if !strings.HasPrefix(dup.Name, "Copie de ") || dup.ID == created.ID {
		t.Errorf("unexpected duplicate: %+v", dup)
	}

	w = doRequest(t, srv, http.MethodDelete, "/api/templates/"+dup.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = doRequest(t, srv, http.MethodGet, "/api/templates/"+dup.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestLetterGenerate(t *testing.T) {
	srv := newTestServer(t)
	token := userToken(t)

	w := doRequest(t, srv, http.MethodPost, "/api/properties/1/letter", token,
		map[string]string{"templateId": template.DefaultID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body is not a PDF")
	}

	var history []activity.LetterEntry
	w = doRequest(t, srv, http.MethodGet, "/api/properties/1/letters", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &history)
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].TemplateID != template.DefaultID || history[0].UserEmail != "user@example.com" {
		t.Errorf("unexpected history entry: %+v", history[0])
	}

	var entries []activity.Entry
	w = doRequest(t, srv, http.MethodGet, "/api/logs", adminToken(t), nil)
	decodeBody(t, w, &entries)
	var generated, used bool
	for _, e := range entries {
		switch e.Action {
		case activity.ActionPDFGenerated:
			generated = true
		case activity.ActionTemplateUsed:
			used = true
		}
	}
	if !generated || !used {
		t.Errorf("expected pdf_generated and template_used entries, got %+v", entries)
	}
}

func TestLetterGenerateUnknownTemplate(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodPost, "/api/properties/1/letter", adminToken(t),
		map[string]string{"templateId": "no-such-template"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestLogsAdminOnly(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/logs", userToken(t), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin, got %d", w.Code)
	}

	w = doRequest(t, srv, http.MethodDelete, "/api/logs", adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 clearing logs, got %d", w.Code)
	}
}

func TestMapboxToken(t *testing.T) {
	srv := newTestServer(t)

	var body mapboxTokenBody
	w := doRequest(t, srv, http.MethodGet, "/api/settings/mapbox-token", userToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &body)
	if body.Token != "" {
		t.Errorf("expected empty token initially, got %q", body.Token)
	}

	w = doRequest(t, srv, http.MethodPut, "/api/settings/mapbox-token", userToken(t),
		mapboxTokenBody{Token: "pk.test"})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin update, got %d", w.Code)
	}

	w = doRequest(t, srv, http.MethodPut, "/api/settings/mapbox-token", adminToken(t),
		mapboxTokenBody{Token: "pk.test"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doRequest(t, srv, http.MethodGet, "/api/settings/mapbox-token", userToken(t), nil)
	decodeBody(t, w, &body)
	if body.Token != "pk.test" {
		t.Errorf("expected stored token, got %q", body.Token)
	}
}
