package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/jmorel/prospec/internal/auth"
)

type contextKey string

const userContextKey contextKey = "user"

// requireUser wraps a handler with bearer-token identification. The token
// is an opaque session marker: it is decoded, never verified, which is the
// documented contract of this demo's auth. Requests without a decodable
// token get 401.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		claims, err := auth.DecodeToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		// Prefer the full account projection (it carries the allowed
		// sections); fall back to the claims for unknown emails.
		user, ok := auth.UserByEmail(claims.Email)
		if !ok {
			user = auth.User{Email: claims.Email, Name: claims.Name, Role: claims.Role}
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// currentUser returns the identified user stored by requireUser.
func currentUser(r *http.Request) auth.User {
	user, _ := r.Context().Value(userContextKey).(auth.User)
	return user
}
