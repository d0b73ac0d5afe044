package auth

import (
	"context"
	"testing"
	"time"
)

func testService() *Service {
	return NewServiceWithDelay(0)
}

func TestLoginSuccess(t *testing.T) {
	res, err := testService().Login(context.Background(), "admin@example.com", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if res.User == nil || res.User.Role != RoleAdmin {
		t.Errorf("user = %+v, want admin role", res.User)
	}
	if res.Token == "" {
		t.Error("expected a token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	res, err := testService().Login(context.Background(), "admin@example.com", "wrong")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != "invalid credentials" {
		t.Errorf("error = %q, want generic message", res.Error)
	}
	if res.Token != "" || res.User != nil {
		t.Error("failure must not leak token or user")
	}
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	wrongPass, err := testService().Login(context.Background(), "admin@example.com", "wrong")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	unknown, err := testService().Login(context.Background(), "nobody@x.com", "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if unknown.Success {
		t.Fatal("expected failure")
	}
	if unknown.Error != wrongPass.Error {
		t.Errorf("unknown-email error %q differs from wrong-password error %q",
			unknown.Error, wrongPass.Error)
	}
}

func TestLoginUserProjectionHasNoHash(t *testing.T) {
	res, err := testService().Login(context.Background(), "user@example.com", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if res.User.Role != RoleUser {
		t.Errorf("role = %q, want user", res.User.Role)
	}
	if len(res.User.Sections) != 2 {
		t.Errorf("sections = %v, want [A B]", res.User.Sections)
	}
}

func TestLoginRespectsContextCancel(t *testing.T) {
	s := NewServiceWithDelay(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Login(ctx, "admin@example.com", "password")
	if err == nil {
		t.Fatal("expected context error")
	}
}
