// Package activity records user actions and letter history in the local
// state store, append-only.
package activity

import (
	"fmt"
	"time"

	"github.com/jmorel/prospec/internal/store"
)

// Action is a recorded user action kind.
type Action string

const (
	ActionLogin          Action = "login"
	ActionPropertyViewed Action = "property_viewed"
	ActionPDFGenerated   Action = "pdf_generated"
	ActionTemplateUsed   Action = "template_used"
)

// Entry is one recorded user action.
type Entry struct {
	Timestamp string                 `json:"timestamp"` // ISO 8601
	UserEmail string                 `json:"userEmail"`
	Action    Action                 `json:"action"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Logger appends action entries to the store. Appends read the full list,
// add one entry and write it back; with a single process on the store this
// is safe, and it matches the storage shape the data was designed around.
type Logger struct {
	store *store.Store
	now   func() time.Time

	// maxEntries caps each log, keeping the newest entries.
	// Zero means unbounded, the original behavior.
	maxEntries int
}

// NewLogger creates an activity logger without retention.
func NewLogger(s *store.Store) *Logger {
	return &Logger{store: s, now: time.Now}
}

// NewLoggerWithRetention creates a logger keeping at most maxEntries per log.
func NewLoggerWithRetention(s *store.Store, maxEntries int) *Logger {
	return &Logger{store: s, now: time.Now, maxEntries: maxEntries}
}

// Log appends one action entry to the global action log.
func (l *Logger) Log(userEmail string, action Action, details map[string]interface{}) error {
	entry := Entry{
		Timestamp: l.now().UTC().Format(time.RFC3339),
		UserEmail: userEmail,
		Action:    action,
		Details:   details,
	}

	var entries []Entry
	if err := l.store.GetJSON(store.KeyActionLogs, &entries); err != nil {
		return fmt.Errorf("reading action logs: %w", err)
	}
	entries = append(entries, entry)
	entries = l.trim(entries)

	if err := l.store.SetJSON(store.KeyActionLogs, entries); err != nil {
		return fmt.Errorf("writing action logs: %w", err)
	}
	return nil
}

// Entries returns the full action log in insertion order. A missing or
// unreadable log reads as empty.
func (l *Logger) Entries() ([]Entry, error) {
	var entries []Entry
	if err := l.store.GetJSON(store.KeyActionLogs, &entries); err != nil {
		return nil, fmt.Errorf("reading action logs: %w", err)
	}
	return entries, nil
}

// Clear removes the global action log.
func (l *Logger) Clear() error {
	return l.store.Delete(store.KeyActionLogs)
}

func (l *Logger) trim(entries []Entry) []Entry {
	if l.maxEntries <= 0 || len(entries) <= l.maxEntries {
		return entries
	}
	return entries[len(entries)-l.maxEntries:]
}
