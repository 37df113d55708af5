package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/events"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/rbac"
	"github.com/izelavimelek/cliply/internal/repositories"
)

type AnnouncementService struct {
	announcementRepo AnnouncementStore
	campaignRepo     CampaignStore
	brandRepo        BrandStore
	appRepo          ApplicationStore
	publisher        events.Publisher
	log              *zap.Logger
}

func NewAnnouncementService(
	announcementRepo AnnouncementStore,
	campaignRepo CampaignStore,
	brandRepo BrandStore,
	appRepo ApplicationStore,
	publisher events.Publisher,
	log *zap.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		campaignRepo:     campaignRepo,
		brandRepo:        brandRepo,
		appRepo:          appRepo,
		publisher:        publisher,
		log:              log,
	}
}

// ownedCampaign loads the campaign and verifies the session's brand owns it.
func (s *AnnouncementService) ownedCampaign(ctx context.Context, session *rbac.Session, campaignID uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	if rbac.OwnershipExempt(session) {
		return campaign, nil
	}
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
	return campaign, nil
}

func (s *AnnouncementService) Create(ctx context.Context, session *rbac.Session, campaignID uuid.UUID, title, body, priority string, pinned bool) (*models.Announcement, error) {
	campaign, err := s.ownedCampaign(ctx, session, campaignID)
	if err != nil {
		return nil, err
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.IsValidPriority(priority) {
		return nil, apperr.Validationf("invalid priority %q", priority)
	}

	a := &models.Announcement{
		CampaignID: campaignID,
		BrandID:    campaign.BrandID,
		Title:      title,
		Body:       body,
		Priority:   priority,
		Pinned:     pinned,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.Stream, events.Event{
		Type: events.EventAnnouncementPosted,
		Payload: map[string]any{
			"announcement_id": a.ID.String(),
			"campaign_id":     campaignID.String(),
			"priority":        a.Priority,
		},
	})

	return a, nil
}

func (s *AnnouncementService) Update(ctx context.Context, session *rbac.Session, id uuid.UUID, title, body, priority *string, pinned *bool) (*models.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("announcement not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCampaign(ctx, session, a.CampaignID); err != nil {
		return nil, err
	}

	if title != nil {
		a.Title = *title
	}
	if body != nil {
		a.Body = *body
	}
	if priority != nil {
		if !models.IsValidPriority(*priority) {
			return nil, apperr.Validationf("invalid priority %q", *priority)
		}
		a.Priority = *priority
	}
	if pinned != nil {
		a.Pinned = *pinned
	}

	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, session *rbac.Session, id uuid.UUID) error {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFoundf("announcement not found")
	}
	if err != nil {
		return err
	}
	if _, err := s.ownedCampaign(ctx, session, a.CampaignID); err != nil {
		return err
	}
	return s.announcementRepo.Delete(ctx, id)
}

// ListForCampaign is readable by the owning brand and by creators with an
// approved application. Pinned announcements come first.
func (s *AnnouncementService) ListForCampaign(ctx context.Context, session *rbac.Session, campaignID uuid.UUID, limit, offset int) ([]models.Announcement, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}

	if !rbac.OwnershipExempt(session) {
		switch session.Role {
		case models.RoleCreator:
			approved, err := s.appRepo.HasApproved(ctx, campaignID, session.UserID)
			if err != nil {
				return nil, err
			}
			if !approved {
				return nil, apperr.Forbiddenf("no approved application for this campaign")
			}
		default:
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
	}

	return s.announcementRepo.ListByCampaign(ctx, campaignID, limit, offset)
}
