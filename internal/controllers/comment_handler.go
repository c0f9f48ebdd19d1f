package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Moinuddin-dotcom/roadmap-server/dto"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/models"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/repository"
)

// PATCH /posts/add-comment/:id
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	var body dto.AddCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Comment) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "comment text required")
	}

	info := models.CommentInfo{
		Comment:   body.Comment,
		UserEmail: body.UserEmail,
		UserName:  body.UserName,
		UserPhoto: body.UserPhoto,
	}
	if _, err := h.Posts.AddComment(c.Context(), id, info); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Comment added successfully"})
}

// PATCH /post/update-comment/:postId/:commentId
func (h *PostHandler) UpdateComment(c *fiber.Ctx) error {
	pid, err := postID(c, "postId")
	if err != nil {
		return err
	}
	cid, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	var body dto.UpdateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	text := strings.TrimSpace(body.Comment)
	if text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "comment text required")
	}

	res, err := h.Posts.UpdateComment(c.Context(), pid, cid, text)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	})
}

// DELETE /post/delete-comment/:postId/:commentId
func (h *PostHandler) DeleteComment(c *fiber.Ctx) error {
	pid, err := postID(c, "postId")
	if err != nil {
		return err
	}
	cid, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	res, err := h.Posts.DeleteComment(c.Context(), pid, cid)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	})
}
