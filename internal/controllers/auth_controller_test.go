package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/token"
)

func newAuthApp(ts *token.Service) *fiber.App {
	h := &AuthHandler{Tokens: ts}
	app := fiber.New()
	app.Post("/jwt", h.IssueToken)
	app.Get("/logout", h.Logout)
	return app
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestIssueTokenSetsCookie(t *testing.T) {
	ts := token.NewService("test-secret", false)
	app := newAuthApp(ts)

	resp, err := app.Test(jsonReq(http.MethodPost, "/jwt", `{"email":"a@x.com"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, true, body["success"])

	cookie := findCookie(resp, token.CookieName)
	require.NotNil(t, cookie, "token cookie must be set")
	assert.True(t, cookie.HttpOnly)

	claims, err := ts.Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	app := newAuthApp(token.NewService("test-secret", false))

	resp, err := app.Test(jsonReq(http.MethodPost, "/jwt", `{}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newAuthApp(token.NewService("test-secret", false))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := findCookie(resp, token.CookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
