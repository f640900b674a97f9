package auth

import (
	"context"
	"errors"
)

// Common errors used by repositories and use cases.
var (
	// ErrNotFound: no account exists for the given email.
	ErrNotFound = errors.New("not found")
	// ErrUserAlreadyExists: registration attempted for an email on file.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials: the submitted password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated: missing, expired or malformed token, or a token whose
	// subject can no longer be resolved. Deliberately coarse so callers cannot
	// probe which case occurred.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrStoreUnavailable: the user store could not be reached. Never collapsed
	// into ErrNotFound/ErrUnauthenticated; callers may retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, limit, offset int) ([]User, error)
}
