package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/controllers"
)

func SetupPosts(app *fiber.App, h *controllers.PostHandler, gate fiber.Handler) {
	app.Post("/post", gate, h.Create)
	app.Get("/post", h.List)
	app.Get("/post/single-post/:id", gate, h.GetSingle)
	app.Patch("/post/update-single-post/:id", gate, h.Update)
	app.Delete("/post/delete-single-post/:id", gate, h.Delete)
}
