package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Claims is the payload carried inside an opaque session token.
type Claims struct {
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	IssuedAt int64  `json:"iat"`
}

// EncodeToken issues an opaque session token for a user: base64 of a JSON
// payload. It is not signed and not verifiable; it only marks a session.
func EncodeToken(u User, now time.Time) string {
	claims := Claims{
		Email:    u.Email,
		Role:     u.Role,
		Name:     u.Name,
		IssuedAt: now.UnixMilli(),
	}
	data, err := json.Marshal(claims)
	if err != nil {
		// Claims is a plain struct of strings and ints.
		panic("encoding token claims: " + err.Error())
	}
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeToken parses a session token without verifying anything.
// It fails only when the token is not base64 JSON or carries no email.
func DecodeToken(token string) (*Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("parsing token payload: %w", err)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("token carries no email")
	}

	return &claims, nil
}
