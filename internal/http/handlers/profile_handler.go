package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	log            *zap.Logger
}

func NewProfileHandler(profileService *services.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, log: log}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profileService.Get(c.Context(), middleware.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	profile, err := h.profileService.Update(c.Context(), middleware.GetSession(c), req.DisplayName, req.Bio)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) UpdateTheme(c *fiber.Ctx) error {
	var req dto.UpdateThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.profileService.UpdateTheme(c.Context(), middleware.GetSession(c), req.Theme); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ProfileHandler) ListSocialAccounts(c *fiber.Ctx) error {
	accounts, err := h.profileService.ListSocialAccounts(c.Context(), middleware.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: accounts})
}

func (h *ProfileHandler) SyncSocialAccount(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validationf("invalid account id")
	}
	account, err := h.profileService.SyncSocialAccount(c.Context(), middleware.GetSession(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: account})
}

func (h *ProfileHandler) DisconnectSocialAccount(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validationf("invalid account id")
	}
	if err := h.profileService.DisconnectSocialAccount(c.Context(), middleware.GetSession(c), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
