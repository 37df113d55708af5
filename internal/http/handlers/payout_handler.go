package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/services"
)

type PayoutHandler struct {
	payoutService *services.PayoutService
	log           *zap.Logger
}

func NewPayoutHandler(payoutService *services.PayoutService, log *zap.Logger) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService, log: log}
}

func (h *PayoutHandler) ListMine(c *fiber.Ctx) error {
	payouts, err := h.payoutService.ListMine(c.Context(), middleware.GetSession(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: payouts})
}
