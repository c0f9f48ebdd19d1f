package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/dto"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/models"
)

type UserHandler struct {
	Users UserStore
}

// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var body models.User
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Email) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	res, existed, err := h.Users.CreateIfAbsent(c.Context(), body)
	if err != nil {
		return err
	}
	if existed {
		return c.JSON(dto.UserExistsResponse{Message: "User already exists", InsertedID: nil})
	}
	return c.JSON(dto.InsertResult{Acknowledged: true, InsertedID: res.InsertedID})
}

// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GET /users/role/:email
func (h *UserHandler) Role(c *fiber.Ctx) error {
	u, err := h.Users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	role := ""
	if u != nil {
		role = u.Role
	}
	return c.JSON(dto.RoleResponse{Role: role})
}

// GET /users/singleUser/:email
func (h *UserHandler) SingleUser(c *fiber.Ctx) error {
	u, err := h.Users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(u)
}
