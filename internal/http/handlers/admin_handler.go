package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/services"
)

type AdminHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewAdminHandler(campaignService *services.CampaignService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{campaignService: campaignService, log: log}
}

func (h *AdminHandler) ListPendingCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.ListPendingApproval(c.Context(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *AdminHandler) ReviewCampaign(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if req.Action != "approve" && req.Action != "reject" {
		return apperr.Validationf("action must be approve or reject")
	}

	campaign, err := h.campaignService.AdminReview(c.Context(), middleware.GetSession(c), id, req.Action == "approve")
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}
