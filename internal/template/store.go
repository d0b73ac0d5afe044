package template

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store provides CRUD operations for letter templates in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore creates a template store and seeds the demo templates when the
// table is empty.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db, now: time.Now}
	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("seeding templates: %w", err)
	}
	return s, nil
}

const selectColumns = `id, name, description, type, html_content, created_by, last_modified`

// List returns all templates, most recently modified first.
func (s *Store) List() ([]*LetterTemplate, error) {
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT %s FROM letter_templates ORDER BY last_modified DESC", selectColumns,
	))
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = fmt.Errorf("closing rows: %w", cerr)
		}
	}()

	var templates []*LetterTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

// Get returns a template by its ID.
func (s *Store) Get(id string) (*LetterTemplate, error) {
	row := s.db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM letter_templates WHERE id = ?", selectColumns,
	), id)

	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("template %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying template %s: %w", id, err)
	}
	return t, nil
}

// Create stores a new template and returns it with its generated ID.
func (s *Store) Create(t LetterTemplate) (*LetterTemplate, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if !ValidKind(string(t.Type)) {
		return nil, fmt.Errorf("invalid template type: %s", t.Type)
	}

	t.ID = uuid.NewString()
	t.LastModified = s.now()

	if err := s.insert(t); err != nil {
		return nil, err
	}
	return s.Get(t.ID)
}

// Update replaces an existing template's editable fields.
func (s *Store) Update(t LetterTemplate) (*LetterTemplate, error) {
	if !ValidKind(string(t.Type)) {
		return nil, fmt.Errorf("invalid template type: %s", t.Type)
	}

	result, err := s.db.Exec(
		`UPDATE letter_templates
		 SET name = ?, description = ?, type = ?, html_content = ?, last_modified = ?
		 WHERE id = ?`,
		t.Name, t.Description, string(t.Type), t.HTMLContent, s.now(), t.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("template %s not found", t.ID)
	}

	return s.Get(t.ID)
}

// Duplicate copies a template under a new ID with a "Copie de" name.
func (s *Store) Duplicate(id, createdBy string) (*LetterTemplate, error) {
	src, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	dup := *src
	dup.ID = uuid.NewString()
	dup.Name = "Copie de " + src.Name
	dup.CreatedBy = createdBy
	dup.LastModified = s.now()

	if err := s.insert(dup); err != nil {
		return nil, err
	}
	return s.Get(dup.ID)
}

// Delete removes a template by ID.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec("DELETE FROM letter_templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("template %s not found", id)
	}
	return nil
}

func (s *Store) insert(t LetterTemplate) error {
	_, err := s.db.Exec(
		`INSERT INTO letter_templates (id, name, description, type, html_content, created_by, last_modified)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Description, string(t.Type), t.HTMLContent, t.CreatedBy, t.LastModified,
	)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	return nil
}

// seed inserts the demo templates into an empty table.
func (s *Store) seed() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM letter_templates").Scan(&count); err != nil {
		return fmt.Errorf("counting templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range demoTemplates {
		if err := s.insert(t); err != nil {
			return err
		}
	}
	return nil
}

// scanTemplate scans a template from a database row.
func scanTemplate(row interface{ Scan(...interface{}) error }) (*LetterTemplate, error) {
	var t LetterTemplate
	var kind string
	err := row.Scan(&t.ID, &t.Name, &t.Description, &kind, &t.HTMLContent, &t.CreatedBy, &t.LastModified)
	if err != nil {
		return nil, err
	}
	t.Type = Kind(kind)
	return &t, nil
}
