package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/repositories"
	"github.com/izelavimelek/cliply/internal/services"
)

type BrandHandler struct {
	brandRepo *repositories.BrandRepo
	billing   services.PaymentStatusChecker
	log       *zap.Logger
}

func NewBrandHandler(brandRepo *repositories.BrandRepo, billing services.PaymentStatusChecker, log *zap.Logger) *BrandHandler {
	return &BrandHandler{brandRepo: brandRepo, billing: billing, log: log}
}

func (h *BrandHandler) GetMyBrand(c *fiber.Ctx) error {
	session := middleware.GetSession(c)
	brand, err := h.brandRepo.GetByOwnerID(c.Context(), session.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFoundf("no brand for this account")
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

// CreateMyBrand sets up the brand record for accounts that signed up
// without one (OAuth sign-ins that later switch to the brand side).
func (h *BrandHandler) CreateMyBrand(c *fiber.Ctx) error {
	var req dto.UpdateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if req.Name == nil || *req.Name == "" {
		return apperr.Validationf("brand name is required")
	}

	session := middleware.GetSession(c)
	if _, err := h.brandRepo.GetByOwnerID(c.Context(), session.UserID); err == nil {
		return apperr.Conflictf("brand already exists for this account")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	brand := &models.Brand{
		OwnerID:     session.UserID,
		Name:        *req.Name,
		Industry:    req.Industry,
		Description: req.Description,
		Website:     req.Website,
	}
	if err := h.brandRepo.Create(c.Context(), brand); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return apperr.Conflictf("brand already exists for this account")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *BrandHandler) UpdateMyBrand(c *fiber.Ctx) error {
	var req dto.UpdateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	session := middleware.GetSession(c)
	brand, err := h.brandRepo.GetByOwnerID(c.Context(), session.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFoundf("no brand for this account")
	}
	if err != nil {
		return err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return apperr.Validationf("brand name cannot be empty")
		}
		brand.Name = *req.Name
	}
	if req.Industry != nil {
		brand.Industry = req.Industry
	}
	if req.Description != nil {
		brand.Description = req.Description
	}
	if req.Website != nil {
		brand.Website = req.Website
	}

	if err := h.brandRepo.Update(c.Context(), brand); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

// GetPaymentStatus proxies the billing collaborator for the caller's brand.
func (h *BrandHandler) GetPaymentStatus(c *fiber.Ctx) error {
	session := middleware.GetSession(c)
	brand, err := h.brandRepo.GetByOwnerID(c.Context(), session.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFoundf("no brand for this account")
	}
	if err != nil {
		return err
	}

	hasPayment, err := h.billing.HasPaymentMethod(c.Context(), brand.ID)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "billing service unavailable", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.PaymentStatusResponse{HasPaymentMethod: hasPayment}})
}
