package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmorel/prospec/internal/store"
)

// LetterEntry is one letter generation recorded against a property.
type LetterEntry struct {
	Date         string `json:"date"` // ISO 8601
	TemplateID   string `json:"templateId"`
	TemplateName string `json:"templateName"`
	UserEmail    string `json:"userEmail"`
	PropertyID   string `json:"propertyId"`
}

// LogLetter appends a letter generation to the property's history log.
func (l *Logger) LogLetter(propertyID, templateID, templateName, userEmail string) error {
	entry := LetterEntry{
		Date:         l.now().UTC().Format(time.RFC3339),
		TemplateID:   templateID,
		TemplateName: templateName,
		UserEmail:    userEmail,
		PropertyID:   propertyID,
	}

	key := store.LetterHistoryKey(propertyID)

	var entries []LetterEntry
	if err := l.store.GetJSON(key, &entries); err != nil {
		return fmt.Errorf("reading letter history: %w", err)
	}
	entries = append(entries, entry)
	if l.maxEntries > 0 && len(entries) > l.maxEntries {
		entries = entries[len(entries)-l.maxEntries:]
	}

	if err := l.store.SetJSON(key, entries); err != nil {
		return fmt.Errorf("writing letter history: %w", err)
	}
	return nil
}

// LetterHistory returns the letter history for one property, oldest first.
func (l *Logger) LetterHistory(propertyID string) ([]LetterEntry, error) {
	var entries []LetterEntry
	if err := l.store.GetJSON(store.LetterHistoryKey(propertyID), &entries); err != nil {
		return nil, fmt.Errorf("reading letter history: %w", err)
	}
	return entries, nil
}

// AllLetterHistory returns every property's letter history keyed by
// property ID. Unreadable entries are skipped.
func (l *Logger) AllLetterHistory() (map[string][]LetterEntry, error) {
	keys, err := l.store.KeysWithPrefix(store.LetterHistoryPrefix())
	if err != nil {
		return nil, fmt.Errorf("listing letter history keys: %w", err)
	}

	history := make(map[string][]LetterEntry, len(keys))
	for _, key := range keys {
		propertyID := strings.TrimPrefix(key, store.LetterHistoryPrefix())

		var entries []LetterEntry
		if err := l.store.GetJSON(key, &entries); err != nil {
			continue
		}
		if entries != nil {
			history[propertyID] = entries
		}
	}
	return history, nil
}

// ClearLetterHistory removes the letter history of one property.
func (l *Logger) ClearLetterHistory(propertyID string) error {
	return l.store.Delete(store.LetterHistoryKey(propertyID))
}
