package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/controllers"
)

func SetupAuth(app *fiber.App, h *controllers.AuthHandler) {
	app.Post("/jwt", h.IssueToken)
	app.Get("/logout", h.Logout)
}
