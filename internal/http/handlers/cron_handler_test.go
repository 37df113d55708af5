package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/config"
)

func cronApp(secret string) *fiber.App {
	h := NewCronHandler(&config.Config{CronSecret: secret}, zap.NewNop())
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				return c.Status(apperr.StatusCode(ae.Kind)).JSON(fiber.Map{"error": ae.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/cron/poll-views", h.PollViews)
	app.Get("/cron/compute-payouts", h.ComputePayouts)
	return app
}

func TestCronSecretGate(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		query      string
		wantStatus int
	}{
		{"valid secret", "s3cret", "?secret=s3cret", fiber.StatusOK},
		{"wrong secret", "s3cret", "?secret=nope", fiber.StatusUnauthorized},
		{"missing secret", "s3cret", "", fiber.StatusUnauthorized},
		{"unset secret rejects everything", "", "?secret=", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := cronApp(tt.secret)
			for _, path := range []string{"/cron/poll-views", "/cron/compute-payouts"} {
				req := httptest.NewRequest("GET", path+tt.query, nil)
				resp, err := app.Test(req)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, resp.StatusCode, path)
			}
		})
	}
}
