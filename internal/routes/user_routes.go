package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/controllers"
)

func SetupUsers(app *fiber.App, h *controllers.UserHandler, gate fiber.Handler) {
	app.Post("/users", h.Create)
	app.Get("/users", h.List)
	app.Get("/users/role/:email", gate, h.Role)
	app.Get("/users/singleUser/:email", gate, h.SingleUser)
}
