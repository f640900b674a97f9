package auth

import (
	"context"
	"errors"
	"fmt"
)

// Resolver turns a bearer token into an authenticated principal. It is
// stateless: the account is loaded fresh from the user store on every call,
// so a deleted account invalidates its outstanding tokens immediately.
type Resolver struct {
	codec TokenCodec
	repo  UserRepository
}

func NewResolver(codec TokenCodec, repo UserRepository) *Resolver {
	return &Resolver{codec: codec, repo: repo}
}

// Resolve verifies the token, extracts the email claim and loads the account.
// Missing, expired or malformed tokens and unknown accounts all collapse into
// ErrUnauthenticated so callers cannot distinguish them; store outages keep
// their own error kind.
func (r *Resolver) Resolve(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrUnauthenticated
	}
	claims, err := r.codec.Verify(token)
	if err != nil {
		return User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return User{}, fmt.Errorf("%w: token has no email claim", ErrUnauthenticated)
	}
	user, err := r.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, fmt.Errorf("%w: unknown account", ErrUnauthenticated)
		}
		return User{}, err
	}
	return user, nil
}
