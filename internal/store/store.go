// Package store provides the local key-value state store.
//
// It is the durable counterpart of the browser local storage the app was
// designed around: JSON strings under fixed keys, backed by a SQLite table.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Well-known keys. Letter history keys are derived per property
// with LetterHistoryKey.
const (
	KeyUser        = "user"
	KeyToken       = "jwtToken"
	KeyMapboxToken = "mapbox_token"
	KeyActionLogs  = "userActionLogs"

	letterHistoryPrefix = "letterHistoryByProperty:"
)

// LetterHistoryKey returns the storage key for a property's letter history.
func LetterHistoryKey(propertyID string) string {
	return letterHistoryPrefix + propertyID
}

// LetterHistoryPrefix returns the common prefix of all letter history keys.
func LetterHistoryPrefix() string {
	return letterHistoryPrefix
}

// Store manages key-value state in SQLite.
type Store struct {
	db *sql.DB
}

// New creates a store over an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw value for a key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM local_state WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying key %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a raw value under a key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO local_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM local_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}

// KeysWithPrefix returns all keys starting with prefix, sorted.
func (s *Store) KeysWithPrefix(prefix string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT key FROM local_state WHERE key LIKE ? || '%' ORDER BY key", prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = fmt.Errorf("closing rows: %w", cerr)
		}
	}()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// GetJSON decodes the value stored under key into v.
// A missing key or malformed stored JSON leaves v untouched and returns
// nil: stored state that cannot be read is treated as absent.
func (s *Store) GetJSON(key string, v interface{}) error {
	raw, ok, err := s.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return nil // malformed state reads as empty
	}
	return nil
}

// SetJSON marshals v and stores it under key.
func (s *Store) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding value for key %s: %w", key, err)
	}
	return s.Set(key, string(data))
}
