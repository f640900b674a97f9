package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mathewkioko/edulink/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, users *handlers.UserHandler, groups *handlers.GroupHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello user"})
	})

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/signup", auth.Register)
	a.Post("/signin", auth.Login)

	u := v1.Group("/users")
	u.Post("/", users.Create)
	u.Get("/", users.List)
	u.Get("/profile", authMW, users.Profile)

	g := v1.Group("/groups")
	g.Get("/", groups.List) // public listing
	g.Post("/", authMW, groups.Create)
	g.Get("/my", authMW, groups.My)
}
