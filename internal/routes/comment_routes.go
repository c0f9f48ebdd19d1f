package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/controllers"
)

func SetupComments(app *fiber.App, h *controllers.PostHandler, gate fiber.Handler) {
	app.Patch("/posts/add-comment/:id", gate, h.AddComment)
	app.Patch("/post/update-comment/:postId/:commentId", gate, h.UpdateComment)
	app.Delete("/post/delete-comment/:postId/:commentId", gate, h.DeleteComment)
}
