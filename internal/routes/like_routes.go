package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/controllers"
)

func SetupLikes(app *fiber.App, h *controllers.PostHandler, gate fiber.Handler) {
	app.Patch("/posts/like/:id", gate, h.ToggleLike)
}
