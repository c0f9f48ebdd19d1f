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

type PostHandler struct {
	Posts PostStore
}

func postID(c *fiber.Ctx, param string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}
	return id, nil
}

// POST /post
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}

	post := models.Post{
		Title:       body.Title,
		Details:     body.Details,
		Category:    body.Category,
		AuthorEmail: body.AuthorEmail,
		AuthorName:  body.AuthorName,
	}
	res, err := h.Posts.Create(c.Context(), post)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).
		JSON(dto.InsertResult{Acknowledged: true, InsertedID: res.InsertedID})
}

// GET /post?category=&sortBy=&sortOrder=
func (h *PostHandler) List(c *fiber.Ctx) error {
	q := repository.ListQuery{
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	posts, err := h.Posts.List(c.Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// GET /post/single-post/:id
func (h *PostHandler) GetSingle(c *fiber.Ctx) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.Posts.GetByID(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// PATCH /post/update-single-post/:id
func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	var body dto.UpdatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	upd := repository.PostUpdate{
		Title:    body.Title,
		Details:  body.Details,
		Category: body.Category,
	}
	if upd.Empty() {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}

	res, err := h.Posts.UpdateFields(c.Context(), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	})
}

// DELETE /post/delete-single-post/:id
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.Posts.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.DeleteResult{DeletedCount: res.DeletedCount})
}
