// Package user exposes the user directory: creating passwordless entries and
// listing accounts. Authentication lives in pkg/auth; this use case reuses
// its repository port.
package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathewkioko/edulink/pkg/auth"
)

type UseCase interface {
	Create(ctx context.Context, email, name string) (auth.User, error)
	List(ctx context.Context, limit, offset int) ([]auth.User, error)
}

type service struct {
	repo auth.UserRepository
}

func NewService(repo auth.UserRepository) UseCase { return &service{repo: repo} }

// Create adds a directory entry without credentials. Such accounts cannot
// log in until they register a password through the auth flow.
func (s *service) Create(ctx context.Context, email, name string) (auth.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return auth.User{}, auth.ErrInvalidCredentials
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return auth.User{}, auth.ErrUserAlreadyExists
	} else if !errors.Is(err, auth.ErrNotFound) {
		return auth.User{}, err
	}
	u := auth.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return auth.User{}, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]auth.User, error) {
	return s.repo.List(ctx, limit, offset)
}
