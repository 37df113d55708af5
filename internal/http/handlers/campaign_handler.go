package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/repositories"
	"github.com/izelavimelek/cliply/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	campaign := campaignFromRequest(&req)
	if err := h.campaignService.Create(c.Context(), middleware.GetSession(c), campaign); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	campaign, err := h.campaignService.GetByID(c.Context(), middleware.GetSession(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	filter := repositories.CampaignFilter{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	campaigns, err := h.campaignService.List(c.Context(), middleware.GetSession(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	campaign, err := h.campaignService.Update(c.Context(), middleware.GetSession(c), id, campaignFromRequest(&req))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	if err := h.campaignService.Delete(c.Context(), middleware.GetSession(c), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// GetCompletion reports per-section completeness for the campaign form.
func (h *CampaignHandler) GetCompletion(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	campaign, completion, sections, err := h.campaignService.Completion(c.Context(), middleware.GetSession(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.CompletionResponse{
		Campaign:  campaign,
		Completed: completion.Completed,
		Total:     completion.Total,
		Sections:  sections,
	}})
}

// CheckPublish is the dry-run publishing gate.
func (h *CampaignHandler) CheckPublish(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	check, err := h.campaignService.CheckPublish(c.Context(), middleware.GetSession(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: check})
}

// Publish submits a complete draft for review. The response always carries
// the gate verdict so the client can render what is missing.
func (h *CampaignHandler) Publish(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	check, err := h.campaignService.Publish(c.Context(), middleware.GetSession(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: check})
}

func (h *CampaignHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := campaignID(c)
	if err != nil {
		return err
	}
	var req dto.CampaignStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	campaign, err := h.campaignService.Transition(c.Context(), middleware.GetSession(c), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func campaignID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid campaign id")
	}
	return id, nil
}

func campaignFromRequest(req *dto.CampaignRequest) *models.Campaign {
	return &models.Campaign{
		Title:       req.Title,
		Description: req.Description,
		Objective:   req.Objective,
		Category:    req.Category,
		Platforms:   req.Platforms,

		TotalBudget:        req.TotalBudget,
		RateType:           req.RateType,
		RatePerThousand:    req.RatePerThousand,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		SubmissionDeadline: req.SubmissionDeadline,

		ClipsCount:          req.ClipsCount,
		LongVideosCount:     req.LongVideosCount,
		LogoPlacement:       req.LogoPlacement,
		BrandMention:        req.BrandMention,
		CallToAction:        req.CallToAction,
		HashtagRequirements: req.HashtagRequirements,

		TargetGeography: req.TargetGeography,
		TargetLanguages: req.TargetLanguages,
		TargetAgeMin:    req.TargetAgeMin,
		TargetAgeMax:    req.TargetAgeMax,

		ContentGuidelinesAccepted: req.ContentGuidelinesAccepted,
		TermsAccepted:             req.TermsAccepted,

		AssetURLs: req.AssetURLs,
	}
}
