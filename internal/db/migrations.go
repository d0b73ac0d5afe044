package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS local_state (
		key        TEXT     PRIMARY KEY,
		value      TEXT     NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS letter_templates (
		id            TEXT     PRIMARY KEY,
		name          TEXT     NOT NULL,
		description   TEXT     NOT NULL DEFAULT '',
		type          TEXT     NOT NULL,
		html_content  TEXT     NOT NULL DEFAULT '',
		created_by    TEXT     NOT NULL DEFAULT '',
		last_modified DATETIME NOT NULL,
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
