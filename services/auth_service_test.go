package services

import (
	"context"
	"errors"
	"testing"

	"taskforge/backend/models"
)

func TestRegisterDefaultsAndHashing(t *testing.T) {
	env := newTestEnv()

	user, err := env.auth.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "pw1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RoleMember {
		t.Errorf("got role %q, want default MEMBER", user.Role)
	}
	if user.PasswordHash == "pw1" || user.PasswordHash == "" {
		t.Errorf("password stored without hashing")
	}
	if user.ID.IsZero() {
		t.Errorf("user ID not assigned")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	input := RegisterInput{Email: "alice@example.com", Name: "Alice", Password: "pw1"}
	if _, err := env.auth.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := env.auth.Register(context.Background(), input)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate register: got %v, want ErrConflict", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv()

	_, err := env.auth.Register(context.Background(), RegisterInput{Email: "a@b.c"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("missing fields: got %v, want ErrValidation", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv()

	_, err := env.auth.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "pw1",
		Role:     "SUPERUSER",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("unknown role: got %v, want ErrValidation", err)
	}
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv()

	if _, err := env.auth.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "pw1",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := env.auth.Authenticate(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("wrong password: got %v, want ErrUnauthenticated", err)
	}
	if _, err := env.auth.Authenticate(context.Background(), "nobody@example.com", "pw1"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("unknown email: got %v, want ErrUnauthenticated", err)
	}

	user, err := env.auth.Authenticate(context.Background(), "alice@example.com", "pw1")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("got email %q", user.Email)
	}
}
