package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mathewkioko/edulink/pkg/auth"
)

// currentUser reads the principal placed into Locals by the auth middleware.
func currentUser(c *fiber.Ctx) (auth.User, bool) {
	u, ok := c.Locals("user").(auth.User)
	return u, ok
}
