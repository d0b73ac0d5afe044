package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// genericError is the single message returned for every failed login.
// Unknown email and wrong password are deliberately indistinguishable.
const genericError = "invalid credentials"

// defaultDelay simulates server processing before a login resolves.
const defaultDelay = 650 * time.Millisecond

// Result is the outcome of a login attempt.
type Result struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Service validates credentials against the static demo account list.
type Service struct {
	delay time.Duration
	now   func() time.Time
}

// NewService creates a login service with the standard simulated delay.
func NewService() *Service {
	return &Service{delay: defaultDelay, now: time.Now}
}

// NewServiceWithDelay creates a login service with a custom delay.
// A zero delay is useful in tests and in the CLI.
func NewServiceWithDelay(delay time.Duration) *Service {
	return &Service{delay: delay, now: time.Now}
}

// Login checks an email/password pair and, on success, issues a session
// token and the user's public projection. Failures all surface the same
// generic error.
func (s *Service) Login(ctx context.Context, email, password string) (Result, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	account, found := findAccount(email)
	if !found {
		return Result{Success: false, Error: genericError}, nil
	}

	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)); err != nil {
		return Result{Success: false, Error: genericError}, nil
	}

	user := account.User
	return Result{
		Success: true,
		Token:   EncodeToken(user, s.now()),
		User:    &user,
	}, nil
}
