package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/dto"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/token"
)

type AuthHandler struct {
	Tokens *token.Service
}

// POST /jwt
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var body dto.TokenRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	email := strings.TrimSpace(body.Email)
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	signed, err := h.Tokens.Sign(email)
	if err != nil {
		return err
	}
	c.Cookie(h.Tokens.Cookie(signed))
	return c.JSON(dto.SuccessResponse{Success: true})
}

// GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.Tokens.ClearCookie())
	return c.JSON(dto.SuccessResponse{Success: true})
}
