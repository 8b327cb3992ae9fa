package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/peoplebook/apiserver/internal/store"
	"github.com/peoplebook/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines persistence operations for user credentials.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// UserService encapsulates credential use-cases. It never stores or
// logs a raw password; only the bcrypt hash is persisted.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new credential record. The duplicate-username
// lookup is a fast path only; the unique index on users.username is
// what actually closes the race between concurrent registrations.
func (s *UserService) Register(ctx context.Context, username, password string) (types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return types.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return types.User{}, store.ErrConflict
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	return s.repo.Create(ctx, types.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
}

// Login verifies a username/password pair. Every failure path returns
// ErrInvalidCredentials so callers cannot enumerate usernames.
func (s *UserService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}
