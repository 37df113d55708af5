package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/http/handlers"
	"github.com/izelavimelek/cliply/internal/middleware"
	"github.com/izelavimelek/cliply/internal/rbac"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	brandHandler *handlers.BrandHandler,
	campaignHandler *handlers.CampaignHandler,
	applicationHandler *handlers.ApplicationHandler,
	submissionHandler *handlers.SubmissionHandler,
	payoutHandler *handlers.PayoutHandler,
	announcementHandler *handlers.AnnouncementHandler,
	adminHandler *handlers.AdminHandler,
	cronHandler *handlers.CronHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Cron triggers (secret-gated, not session-authed)
	api.Get("/cron/poll-views", cronHandler.PollViews)
	api.Get("/cron/compute-payouts", cronHandler.ComputePayouts)

	// Rate-limited endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Auth (public)
	api.Post("/auth/signup", authHandler.SignUp)
	api.Post("/auth/signin", authHandler.SignIn)
	api.Post("/auth/signout", authHandler.SignOut)
	api.Get("/auth/:provider/url", authHandler.AuthorizeURL)
	api.Get("/auth/:provider/callback", authHandler.Callback)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User & profile
	protected.Get("/me", userHandler.GetMe)
	protected.Post("/me/ping", userHandler.Ping)
	protected.Get("/me/profile", profileHandler.GetProfile)
	protected.Patch("/me/profile", profileHandler.UpdateProfile)
	protected.Put("/me/theme", profileHandler.UpdateTheme)

	// Social accounts
	social := protected.Group("/me/social-accounts", middleware.RequirePermission(rbac.PermLinkSocialAccount))
	social.Get("", profileHandler.ListSocialAccounts)
	social.Post("/:id/sync", profileHandler.SyncSocialAccount)
	social.Delete("/:id", profileHandler.DisconnectSocialAccount)

	// Brand
	brand := protected.Group("/me/brand", middleware.RequirePermission(rbac.PermManageBrand))
	brand.Get("", brandHandler.GetMyBrand)
	brand.Post("", brandHandler.CreateMyBrand)
	brand.Patch("", brandHandler.UpdateMyBrand)
	brand.Get("/payment-status", brandHandler.GetPaymentStatus)

	// Campaigns
	protected.Post("/campaigns", middleware.RequirePermission(rbac.PermManageCampaign), campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", middleware.RequirePermission(rbac.PermManageCampaign), campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", middleware.RequirePermission(rbac.PermManageCampaign), campaignHandler.DeleteCampaign)
	protected.Get("/campaigns/:id/completion", campaignHandler.GetCompletion)
	protected.Get("/campaigns/:id/publish-check", middleware.RequirePermission(rbac.PermPublishCampaign), campaignHandler.CheckPublish)
	protected.Post("/campaigns/:id/publish", middleware.RequirePermission(rbac.PermPublishCampaign), campaignHandler.Publish)
	protected.Post("/campaigns/:id/status", middleware.RequirePermission(rbac.PermManageCampaign), campaignHandler.UpdateStatus)

	// Applications
	protected.Post("/campaigns/:id/apply", middleware.RequirePermission(rbac.PermApplyToCampaign), applicationHandler.Apply)
	protected.Get("/campaigns/:id/applications", applicationHandler.ListForCampaign)
	protected.Get("/me/applications", applicationHandler.ListMine)

	// Submissions
	protected.Post("/submissions", middleware.RequirePermission(rbac.PermCreateSubmission), submissionHandler.Create)
	protected.Post("/submissions/:id/review", middleware.RequirePermission(rbac.PermReviewSubmission), submissionHandler.Review)
	protected.Get("/campaigns/:id/submissions", submissionHandler.ListForCampaign)
	protected.Get("/me/submissions", submissionHandler.ListMine)

	// Payouts
	protected.Get("/me/payouts", middleware.RequirePermission(rbac.PermViewPayouts), payoutHandler.ListMine)

	// Announcements
	protected.Post("/campaigns/:id/announcements", middleware.RequirePermission(rbac.PermCreateAnnouncement), announcementHandler.Create)
	protected.Get("/campaigns/:id/announcements", announcementHandler.ListForCampaign)
	protected.Patch("/announcements/:id", middleware.RequirePermission(rbac.PermCreateAnnouncement), announcementHandler.Update)
	protected.Delete("/announcements/:id", middleware.RequirePermission(rbac.PermCreateAnnouncement), announcementHandler.Delete)

	// Admin review
	admin := protected.Group("/admin", middleware.AdminMiddleware())
	admin.Get("/campaigns/pending", adminHandler.ListPendingCampaigns)
	admin.Post("/campaigns/:id/review", adminHandler.ReviewCampaign)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
