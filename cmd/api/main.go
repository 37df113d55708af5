package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/db"
	"github.com/izelavimelek/cliply/internal/events"
	apphttp "github.com/izelavimelek/cliply/internal/http"
	"github.com/izelavimelek/cliply/internal/http/dto"
	"github.com/izelavimelek/cliply/internal/http/handlers"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/repositories"
	"github.com/izelavimelek/cliply/internal/services"
	"github.com/izelavimelek/cliply/internal/social"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	profileRepo := repositories.NewProfileRepo(pool)
	socialRepo := repositories.NewSocialAccountRepo(pool)
	brandRepo := repositories.NewBrandRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	applicationRepo := repositories.NewApplicationRepo(pool)
	submissionRepo := repositories.NewSubmissionRepo(pool)
	payoutRepo := repositories.NewPayoutRepo(pool)
	announcementRepo := repositories.NewAnnouncementRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Collaborators
	billingClient := services.NewBillingClient(cfg.BillingBaseURL, &http.Client{Timeout: cfg.BillingTimeout}, log)
	registry := social.NewRegistry(cfg, log)

	// Services
	authService := services.NewAuthService(userRepo, profileRepo, brandRepo, socialRepo, registry, rdb, cfg, log)
	profileService := services.NewProfileService(profileRepo, socialRepo, registry, log)
	campaignService := services.NewCampaignService(campaignRepo, brandRepo, applicationRepo, auditRepo, billingClient, publisher, log)
	applicationService := services.NewApplicationService(applicationRepo, campaignRepo, brandRepo, auditRepo, log)
	submissionService := services.NewSubmissionService(submissionRepo, campaignRepo, applicationRepo, brandRepo, payoutRepo, auditRepo, publisher, log)
	payoutService := services.NewPayoutService(payoutRepo, log)
	announcementService := services.NewAnnouncementService(announcementRepo, campaignRepo, brandRepo, applicationRepo, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	profileHandler := handlers.NewProfileHandler(profileService, log)
	brandHandler := handlers.NewBrandHandler(brandRepo, billingClient, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	applicationHandler := handlers.NewApplicationHandler(applicationService, log)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, log)
	payoutHandler := handlers.NewPayoutHandler(payoutService, log)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, log)
	adminHandler := handlers.NewAdminHandler(campaignService, log)
	cronHandler := handlers.NewCronHandler(cfg, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})

	apphttp.SetupRouter(app, cfg, log, rdb,
		authHandler, userHandler, profileHandler, brandHandler,
		campaignHandler, applicationHandler, submissionHandler,
		payoutHandler, announcementHandler, adminHandler, cronHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

// errorHandler maps service errors to their HTTP status. Internal errors
// are logged with the request id and masked with a generic message.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID, _ := c.Locals(middleware.CtxRequestID).(string)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, RequestID: requestID})
		}

		var ae *apperr.Error
		if errors.As(err, &ae) {
			if ae.Kind == apperr.Internal || ae.Kind == apperr.Upstream {
				log.Error("request failed",
					zap.String("request_id", requestID),
					zap.String("path", c.Path()),
					zap.Error(err))
			}
			msg := ae.Message
			if ae.Kind == apperr.Internal {
				msg = "internal server error"
			}
			return c.Status(apperr.StatusCode(ae.Kind)).JSON(dto.ErrorResponse{
				Error:     msg,
				Fields:    ae.Fields,
				RequestID: requestID,
			})
		}

		log.Error("request failed",
			zap.String("request_id", requestID),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:     "internal server error",
			RequestID: requestID,
		})
	}
}
