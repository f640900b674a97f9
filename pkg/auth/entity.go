package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account. It doubles as
// the authenticated principal handed to route handlers after session
// resolution.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
