package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/token"
)

func newGatedApp(ts *token.Service, reached *bool) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(ts), func(c *fiber.Ctx) error {
		*reached = true
		email, _ := EmailFromLocals(c)
		return c.SendString(email)
	})
	return app
}

func TestRequireAuthMissingCookie(t *testing.T) {
	reached := false
	app := newGatedApp(token.NewService("s", false), &reached)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, reached, "handler must not run without a token")
}

func TestRequireAuthInvalidToken(t *testing.T) {
	reached := false
	app := newGatedApp(token.NewService("s", false), &reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: "garbage"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, reached, "handler must not run on a bad token")
}

func TestRequireAuthForeignToken(t *testing.T) {
	reached := false
	app := newGatedApp(token.NewService("right-secret", false), &reached)

	signed, err := token.NewService("wrong-secret", false).Sign("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: signed})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, reached)
}

func TestRequireAuthValidToken(t *testing.T) {
	ts := token.NewService("s", false)
	reached := false
	app := newGatedApp(ts, &reached)

	signed, err := ts.Sign("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: signed})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, reached)
}
