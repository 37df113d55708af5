package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg, log: log}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	result, err := h.authService.SignUp(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, result.Token, result.User.Role)
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: result.Token, User: result.User})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	result, err := h.authService.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, result.Token, result.User.Role)
	return c.JSON(dto.AuthResponse{Token: result.Token, User: result.User})
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	h.clearCookie(c, middleware.AuthCookie)
	h.clearCookie(c, middleware.RoleCookie)
	return c.JSON(dto.SuccessResponse{OK: true})
}

// AuthorizeURL returns the provider URL the client should redirect to.
func (h *AuthHandler) AuthorizeURL(c *fiber.Ctx) error {
	url, err := h.authService.AuthorizeURL(c.Context(), c.Params("provider"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.AuthorizeURLResponse{URL: url}})
}

// Callback finishes an OAuth flow and signs the user in.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return apperr.Validationf("code and state are required")
	}

	result, err := h.authService.HandleCallback(c.Context(), c.Params("provider"), code, state)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, result.Token, result.User.Role)
	return c.JSON(dto.AuthResponse{Token: result.Token, User: result.User})
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, token, role string) {
	expires := time.Now().Add(h.cfg.CookieMaxAge)
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     middleware.RoleCookie,
		Value:    role,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:    name,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})
}
