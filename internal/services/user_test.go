package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/peoplebook/apiserver/internal/store"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewUserService(newMemUserRepo())

	user, err := svc.Register(context.Background(), "alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user id to be assigned")
	}
	if user.PasswordHash == "" || strings.Contains(user.PasswordHash, "s3cret-pass") {
		t.Fatalf("password must be stored as a hash, never raw")
	}

	if err := svc.Login(context.Background(), "alice", "s3cret-pass"); err != nil {
		t.Fatalf("login with correct credentials: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newMemUserRepo())

	for _, tc := range []struct{ username, password string }{
		{"", "pass"},
		{"alice", ""},
		{"", ""},
	} {
		if _, err := svc.Register(context.Background(), tc.username, tc.password); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for %q/%q, got %v", tc.username, tc.password, err)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newMemUserRepo())

	if _, err := svc.Register(context.Background(), "alice", "first-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Rejected regardless of password.
	if _, err := svc.Register(context.Background(), "alice", "different-pass"); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginFailsUniformly(t *testing.T) {
	svc := NewUserService(newMemUserRepo())

	if _, err := svc.Register(context.Background(), "alice", "right-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password, unknown user, and both must be indistinguishable.
	wrongPass := svc.Login(context.Background(), "alice", "wrong-pass")
	unknownUser := svc.Login(context.Background(), "bob", "right-pass")
	both := svc.Login(context.Background(), "bob", "wrong-pass")

	for _, err := range []error{wrongPass, unknownUser, both} {
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	}
	if wrongPass.Error() != unknownUser.Error() || unknownUser.Error() != both.Error() {
		t.Fatalf("login failures must be identical")
	}
}
