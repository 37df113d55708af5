package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/rbac"
	"github.com/izelavimelek/cliply/internal/repositories"
)

type ApplicationService struct {
	appRepo      ApplicationStore
	campaignRepo CampaignStore
	brandRepo    BrandStore
	auditRepo    AuditStore
	log          *zap.Logger
}

func NewApplicationService(
	appRepo ApplicationStore,
	campaignRepo CampaignStore,
	brandRepo BrandStore,
	auditRepo AuditStore,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		appRepo:      appRepo,
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// Apply creates a creator's application to an active campaign.
// Applications are auto-approved; the unique constraint on
// (campaign, creator) rejects duplicates.
func (s *ApplicationService) Apply(ctx context.Context, session *rbac.Session, campaignID uuid.UUID, message *string) (*models.CampaignApplication, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, apperr.Validationf("Campaign is not active")
	}

	app := &models.CampaignApplication{
		CampaignID: campaignID,
		CreatorID:  session.UserID,
		Status:     models.ApplicationStatusApproved,
		Message:    message,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Validationf("You have already applied")
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &session.UserID,
		ActorType:   "user",
		Action:      "application_created",
		EntityType:  "campaign_application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String()},
	})

	return app, nil
}

// ListForCampaign lets the owning brand see who applied.
func (s *ApplicationService) ListForCampaign(ctx context.Context, session *rbac.Session, campaignID uuid.UUID, limit, offset int) ([]models.CampaignApplication, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}

	if !rbac.OwnershipExempt(session) {
		brand, err := s.brandRepo.GetByOwnerID(ctx, session.UserID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.Forbiddenf("no brand for this account")
		}
		if err != nil {
			return nil, err
		}
		if campaign.BrandID != brand.ID {
			return nil, apperr.Forbiddenf("not the campaign owner")
		}
	}

	return s.appRepo.ListByCampaign(ctx, campaignID, limit, offset)
}

// ListMine returns the creator's own applications.
func (s *ApplicationService) ListMine(ctx context.Context, session *rbac.Session, limit, offset int) ([]models.CampaignApplication, error) {
	return s.appRepo.ListByCreator(ctx, session.UserID, limit, offset)
}
