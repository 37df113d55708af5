package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	log                *zap.Logger
}

func NewApplicationHandler(applicationService *services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, log: log}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return apperr.Validationf("invalid request body")
	}

	app, err := h.applicationService.Apply(c.Context(), middleware.GetSession(c), id, req.Message)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: app})
}

func (h *ApplicationHandler) ListForCampaign(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	apps, err := h.applicationService.ListForCampaign(c.Context(), middleware.GetSession(c), id, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: apps})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	apps, err := h.applicationService.ListMine(c.Context(), middleware.GetSession(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: apps})
}
