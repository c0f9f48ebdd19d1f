package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/token"
)

const emailLocal = "userEmail"

// RequireAuth rejects requests without a valid token cookie: missing
// cookie -> 401, bad or expired token -> 403. The chain always stops on
// failure, so handlers behind the gate can rely on EmailFromLocals.
func RequireAuth(ts *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(token.CookieName)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
		}
		claims, err := ts.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "forbidden access")
		}
		c.Locals(emailLocal, claims.Email)
		return c.Next()
	}
}

func EmailFromLocals(c *fiber.Ctx) (string, bool) {
	v, ok := c.Locals(emailLocal).(string)
	return v, ok && v != ""
}
