package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/auth"
	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/rbac"
)

const (
	CtxSession = "session"

	// AuthCookie mirrors the bearer token for browser clients.
	AuthCookie = "auth_token"

	// RoleCookie carries the signed-in role. Informational only, never
	// trusted server-side.
	RoleCookie = "user_role"
)

// bearerToken extracts the token from the Authorization header, falling
// back to the auth_token cookie.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr != authHeader {
			return tokenStr
		}
		return ""
	}
	return c.Cookies(AuthCookie)
}

// AuthMiddleware decodes the session token once for all protected routes.
// Expired or malformed tokens are treated the same as no token at all.
func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization token"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxSession, &rbac.Session{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Role:    claims.Role,
			IsAdmin: claims.IsAdmin,
		})

		return c.Next()
	}
}

func GetSession(c *fiber.Ctx) *rbac.Session {
	s, _ := c.Locals(CtxSession).(*rbac.Session)
	return s
}

// RequirePermission gates a route on a role permission. Runs after
// AuthMiddleware.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization token"})
		}
		if !rbac.HasPermission(s.Role, permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
		}
		return c.Next()
	}
}

// AdminMiddleware requires the admin flag.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s == nil || !s.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}
