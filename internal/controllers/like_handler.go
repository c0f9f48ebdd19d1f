package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/dto"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/repository"
)

// PATCH /posts/like/:id
func (h *PostHandler) ToggleLike(c *fiber.Ctx) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	var body dto.LikeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.UserEmail) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "No user email provided")
	}

	res, err := h.Posts.ToggleLike(c.Context(), id, body.UserEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(res)
}
