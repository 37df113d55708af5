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

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
	log                 *zap.Logger
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService, log *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService, log: log}
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	cid, err := campaignID(c)
	if err != nil {
		return err
	}
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if req.Title == "" || req.Body == "" {
		return apperr.Validationf("title and body are required")
	}

	a, err := h.announcementService.Create(c.Context(), middleware.GetSession(c), cid, req.Title, req.Body, req.Priority, req.Pinned)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: a})
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validationf("invalid announcement id")
	}
	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	a, err := h.announcementService.Update(c.Context(), middleware.GetSession(c), id, req.Title, req.Body, req.Priority, req.Pinned)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: a})
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validationf("invalid announcement id")
	}
	if err := h.announcementService.Delete(c.Context(), middleware.GetSession(c), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AnnouncementHandler) ListForCampaign(c *fiber.Ctx) error {
	cid, err := campaignID(c)
	if err != nil {
		return err
	}
	announcements, err := h.announcementService.ListForCampaign(c.Context(), middleware.GetSession(c), cid, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: announcements})
}
