package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/http/dto"
)

// CronHandler serves the scheduler's trigger endpoints. The endpoints
// acknowledge the trigger; the heavy lifting runs out of band.
type CronHandler struct {
	cfg *config.Config
	log *zap.Logger
}

func NewCronHandler(cfg *config.Config, log *zap.Logger) *CronHandler {
	return &CronHandler{cfg: cfg, log: log}
}

func (h *CronHandler) checkSecret(c *fiber.Ctx) error {
	secret := c.Query("secret")
	if h.cfg.CronSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(h.cfg.CronSecret)) != 1 {
		return apperr.Unauthenticatedf("invalid cron secret")
	}
	return nil
}

func (h *CronHandler) PollViews(c *fiber.Ctx) error {
	if err := h.checkSecret(c); err != nil {
		return err
	}
	h.log.Info("cron trigger accepted", zap.String("job", "poll-views"))
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *CronHandler) ComputePayouts(c *fiber.Ctx) error {
	if err := h.checkSecret(c); err != nil {
		return err
	}
	h.log.Info("cron trigger accepted", zap.String("job", "compute-payouts"))
	return c.JSON(dto.SuccessResponse{OK: true})
}
