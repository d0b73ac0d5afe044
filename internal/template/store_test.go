package template

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmorel/prospec/internal/db"
)

func testTemplateStore(t *testing.T) *Store {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "prospec.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if cerr := database.Close(); cerr != nil {
			t.Errorf("closing test database: %v", cerr)
		}
	})

	s, err := NewStore(database)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return s
}

func TestStoreSeedsDemoTemplates(t *testing.T) {
	s := testTemplateStore(t)

	templates, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(templates) != 5 {
		t.Fatalf("got %d templates, want 5", len(templates))
	}

	def, err := s.Get(DefaultID)
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if !strings.Contains(def.HTMLContent, "{{nom_proprietaire}}") {
		t.Error("default template missing owner token")
	}
}

func TestStoreSeedOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospec.db")

	for i := 0; i < 2; i++ {
		database, err := db.Open(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if _, err := NewStore(database); err != nil {
			t.Fatalf("store %d: %v", i, err)
		}
		if err := database.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}

	database, err := db.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			t.Errorf("close: %v", cerr)
		}
	}()
	s, err := NewStore(database)
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	templates, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(templates) != 5 {
		t.Errorf("got %d templates after reopen, want 5", len(templates))
	}
}

func TestCreateAndGet(t *testing.T) {
	s := testTemplateStore(t)

	created, err := s.Create(LetterTemplate{
		Name:        "Relance propriétaire",
		Description: "Relance après premier courrier sans réponse.",
		Type:        KindFollowUp,
		HTMLContent: "<p>Bonjour {{nom_proprietaire}}</p>",
		CreatedBy:   "user@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if created.LastModified.IsZero() {
		t.Error("expected last modified to be set")
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Relance propriétaire" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestCreateValidation(t *testing.T) {
	s := testTemplateStore(t)

	if _, err := s.Create(LetterTemplate{Type: KindOffer}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := s.Create(LetterTemplate{Name: "X", Type: "bogus"}); err == nil {
		t.Error("expected error for invalid type")
	}
}

func TestUpdate(t *testing.T) {
	s := testTemplateStore(t)

	tpl, err := s.Get("1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	tpl.Name = "Offre révisée"
	tpl.HTMLContent = "<p>{{prix_bien}}</p>"
	updated, err := s.Update(*tpl)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Offre révisée" {
		t.Errorf("name = %q", updated.Name)
	}
}

func TestUpdateMissingTemplate(t *testing.T) {
	s := testTemplateStore(t)

	_, err := s.Update(LetterTemplate{ID: "nope", Name: "X", Type: KindOffer})
	if err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestDuplicate(t *testing.T) {
	s := testTemplateStore(t)

	dup, err := s.Duplicate("1", "user@example.com")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.ID == "1" {
		t.Error("duplicate kept the source ID")
	}
	if dup.Name != "Copie de Offre d'achat standard" {
		t.Errorf("name = %q", dup.Name)
	}
	if dup.CreatedBy != "user@example.com" {
		t.Errorf("createdBy = %q", dup.CreatedBy)
	}

	src, err := s.Get("1")
	if err != nil {
		t.Fatalf("get source: %v", err)
	}
	if dup.HTMLContent != src.HTMLContent {
		t.Error("duplicate content differs from source")
	}
}

func TestDelete(t *testing.T) {
	s := testTemplateStore(t)

	if err := s.Delete("4"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get("4"); err == nil {
		t.Error("expected template to be gone")
	}
	if err := s.Delete("4"); err == nil {
		t.Error("expected error deleting twice")
	}
}
