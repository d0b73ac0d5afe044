package auth

import (
	"fmt"

	"github.com/jmorel/prospec/internal/store"
)

// SessionStore persists the current session in the local state store.
// The token and the user record are always written and cleared together.
type SessionStore struct {
	store *store.Store
}

// NewSessionStore creates a session store.
func NewSessionStore(s *store.Store) *SessionStore {
	return &SessionStore{store: s}
}

// Save persists a logged-in session.
func (s *SessionStore) Save(user User, token string) error {
	if err := s.store.SetJSON(store.KeyUser, user); err != nil {
		return fmt.Errorf("storing user: %w", err)
	}
	if err := s.store.Set(store.KeyToken, token); err != nil {
		// Keep the pair consistent: roll the user record back.
		if delErr := s.store.Delete(store.KeyUser); delErr != nil {
			return fmt.Errorf("storing token: %w (also failed to roll back user: %v)", err, delErr)
		}
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

// Restore rehydrates the session saved by a previous run. The stored token
// is decoded, not verified; if it parses and carries an email, the paired
// user record is trusted as-is. Returns false when no valid session exists.
func (s *SessionStore) Restore() (User, string, bool) {
	token, ok, err := s.store.Get(store.KeyToken)
	if err != nil || !ok {
		return User{}, "", false
	}

	if _, err := DecodeToken(token); err != nil {
		return User{}, "", false
	}

	var user User
	if err := s.store.GetJSON(store.KeyUser, &user); err != nil {
		return User{}, "", false
	}
	if user.Email == "" {
		// Token without its paired record; treat the session as broken.
		return User{}, "", false
	}

	return user, token, true
}

// Clear removes the session. Both keys go together.
func (s *SessionStore) Clear() error {
	if err := s.store.Delete(store.KeyToken); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	if err := s.store.Delete(store.KeyUser); err != nil {
		return fmt.Errorf("clearing user: %w", err)
	}
	return nil
}
