package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/auth"
	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/rbac"
)

func testApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware(cfg, zap.NewNop()))
	app.Get("/protected", func(c *fiber.Ctx) error {
		s := GetSession(c)
		return c.JSON(fiber.Map{"user_id": s.UserID, "role": s.Role})
	})
	app.Post("/announcements", RequirePermission(rbac.PermCreateAnnouncement), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Get("/admin", AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func mustToken(t *testing.T, secret, role string, isAdmin bool, ttl time.Duration) string {
	t.Helper()
	token, err := auth.GenerateJWT(secret, uuid.New(), role+"@example.com", role, isAdmin, ttl)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := testApp(cfg)

	validToken := mustToken(t, cfg.JWTSecret, models.RoleBrand, false, time.Hour)
	expiredToken := mustToken(t, cfg.JWTSecret, models.RoleBrand, false, -time.Minute)

	tests := []struct {
		name       string
		authHeader string
		cookie     string
		wantStatus int
	}{
		{"no token", "", "", 401},
		{"malformed header", "Token abc", "", 401},
		{"garbage token", "Bearer not-a-jwt", "", 401},
		{"expired token", "Bearer " + expiredToken, "", 401},
		{"valid bearer", "Bearer " + validToken, "", 200},
		{"valid cookie fallback", "", validToken, 200},
		{"expired cookie", "", expiredToken, 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AuthCookie, Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := testApp(cfg)

	tests := []struct {
		name       string
		role       string
		isAdmin    bool
		wantStatus int
	}{
		{"brand may create announcements", models.RoleBrand, false, 201},
		{"creator may not", models.RoleCreator, false, 403},
		// Admins bypass ownership, not role-category rules.
		{"admin may not either", models.RoleAdmin, true, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/announcements", nil)
			req.Header.Set("Authorization", "Bearer "+mustToken(t, cfg.JWTSecret, tt.role, tt.isAdmin, time.Hour))

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := testApp(cfg)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, cfg.JWTSecret, models.RoleBrand, false, time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, cfg.JWTSecret, models.RoleAdmin, true, time.Hour))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
}
