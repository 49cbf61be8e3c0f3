package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api/v1/healthz")
	})

	app.Post("api/v1/register", h.Register)
	app.Post("api/v1/login", h.Login)
	app.Get("api/v1/users/me", h.Me)
	app.Get("api/v1/healthz", h.Health)
}
