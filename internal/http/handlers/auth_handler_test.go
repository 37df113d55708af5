package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/middleware"
)

func cookieByName(t *testing.T, resp *http.Response, name string) string {
	t.Helper()
	for _, raw := range resp.Header.Values("Set-Cookie") {
		if strings.HasPrefix(raw, name+"=") {
			return raw
		}
	}
	t.Fatalf("no %s cookie in response", name)
	return ""
}

// Both session cookies are httpOnly; neither is readable from scripts.
func TestAuthCookiesAreHTTPOnly(t *testing.T) {
	h := NewAuthHandler(nil, &config.Config{CookieMaxAge: 24 * time.Hour}, zap.NewNop())
	app := fiber.New()
	app.Get("/issue", func(c *fiber.Ctx) error {
		h.setAuthCookies(c, "tok", "brand")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/issue", nil))
	require.NoError(t, err)

	for _, name := range []string{middleware.AuthCookie, middleware.RoleCookie} {
		raw := cookieByName(t, resp, name)
		assert.Contains(t, raw, "HttpOnly", name)
		assert.Contains(t, raw, "SameSite=Lax", name)
	}
}

func TestSignOutClearsCookies(t *testing.T) {
	h := NewAuthHandler(nil, &config.Config{CookieMaxAge: 24 * time.Hour}, zap.NewNop())
	app := fiber.New()
	app.Post("/auth/signout", h.SignOut)

	resp, err := app.Test(httptest.NewRequest("POST", "/auth/signout", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, name := range []string{middleware.AuthCookie, middleware.RoleCookie} {
		raw := cookieByName(t, resp, name)
		assert.Contains(t, raw, name+"=;", "cookie should be emptied")
	}
}
