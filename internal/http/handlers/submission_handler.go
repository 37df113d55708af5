package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/services"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
	log               *zap.Logger
}

func NewSubmissionHandler(submissionService *services.SubmissionService, log *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService, log: log}
}

func (h *SubmissionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return apperr.Validationf("invalid campaign id")
	}
	if req.PostURL == "" {
		return apperr.Validationf("post_url is required")
	}
	if !models.IsValidPlatform(req.Platform) {
		return apperr.Validationf("invalid platform %q", req.Platform)
	}

	sub, err := h.submissionService.Create(c.Context(), middleware.GetSession(c), campaignID, req.PostURL, req.Platform)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: sub})
}

func (h *SubmissionHandler) Review(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validationf("invalid submission id")
	}
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if req.Action != "approve" && req.Action != "reject" {
		return apperr.Validationf("action must be approve or reject")
	}

	sub, err := h.submissionService.Review(c.Context(), middleware.GetSession(c), id, req.Action == "approve")
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: sub})
}

func (h *SubmissionHandler) ListForCampaign(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	subs, err := h.submissionService.ListForCampaign(c.Context(), middleware.GetSession(c), id, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: subs})
}

func (h *SubmissionHandler) ListMine(c *fiber.Ctx) error {
	subs, err := h.submissionService.ListMine(c.Context(), middleware.GetSession(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: subs})
}
