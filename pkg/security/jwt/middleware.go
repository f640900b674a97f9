package jwt

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mathewkioko/edulink/pkg/auth"
)

// NewAuthMiddleware returns a Fiber middleware that resolves the Bearer
// credential from the Authorization header into a principal. On success the
// principal is stored in c.Locals("user") and its id under c.Locals("userId").
// The reason a token was rejected is logged, never sent to the client.
func NewAuthMiddleware(resolver *auth.Resolver, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolver.Resolve(c.Context(), bearerToken(c.Get("Authorization")))
		if err != nil {
			if errors.Is(err, auth.ErrStoreUnavailable) {
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"message": "user store unavailable"})
			}
			log.DebugContext(c.Context(), "session resolution failed", "path", c.Path(), "error", err)
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals("user", user)
		c.Locals("userId", user.ID.String())
		return c.Next()
	}
}

// bearerToken extracts the credential from an Authorization header value.
// Supports both "Bearer <token>" and "<token>" (no prefix).
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if strings.Contains(header, " ") {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		// Fallback: treat entire header as token (for non-standard clients)
	}
	return header
}
