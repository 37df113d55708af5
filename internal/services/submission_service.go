package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/events"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/rbac"
	"github.com/izelavimelek/cliply/internal/repositories"
)

type SubmissionService struct {
	submissionRepo SubmissionStore
	campaignRepo   CampaignStore
	appRepo        ApplicationStore
	brandRepo      BrandStore
	payoutRepo     PayoutStore
	auditRepo      AuditStore
	publisher      events.Publisher
	log            *zap.Logger
}

func NewSubmissionService(
	submissionRepo SubmissionStore,
	campaignRepo CampaignStore,
	appRepo ApplicationStore,
	brandRepo BrandStore,
	payoutRepo PayoutStore,
	auditRepo AuditStore,
	publisher events.Publisher,
	log *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		campaignRepo:   campaignRepo,
		appRepo:        appRepo,
		brandRepo:      brandRepo,
		payoutRepo:     payoutRepo,
		auditRepo:      auditRepo,
		publisher:      publisher,
		log:            log,
	}
}

// Create records a creator's post URL against a campaign. The creator
// needs an approved application.
func (s *SubmissionService) Create(ctx context.Context, session *rbac.Session, campaignID uuid.UUID, postURL, platform string) (*models.Submission, error) {
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

	approved, err := s.appRepo.HasApproved(ctx, campaignID, session.UserID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, apperr.Forbiddenf("no approved application for this campaign")
	}

	if campaign.SubmissionDeadline != nil && time.Now().After(*campaign.SubmissionDeadline) {
		return nil, apperr.Validationf("Submission deadline has passed")
	}

	sub := &models.Submission{
		CampaignID: campaignID,
		CreatorID:  session.UserID,
		PostURL:    postURL,
		Platform:   platform,
		Status:     models.SubmissionStatusPending,
	}
	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &session.UserID,
		ActorType:   "user",
		Action:      "submission_created",
		EntityType:  "submission",
		EntityID:    &sub.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String()},
	})

	return sub, nil
}

// Review is the brand's approve/reject decision. An approved submission
// snapshots earnings and opens a payout.
func (s *SubmissionService) Review(ctx context.Context, session *rbac.Session, id uuid.UUID, approve bool) (*models.Submission, error) {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("submission not found")
	}
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, sub.CampaignID)
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

	status := models.SubmissionStatusApproved
	earnings := 0.0
	if approve {
		earnings = computeEarnings(campaign, sub)
	} else {
		status = models.SubmissionStatusRejected
	}

	now := time.Now()
	if err := s.submissionRepo.Review(ctx, id, status, now, earnings); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			return nil, apperr.Conflictf("submission already reviewed")
		}
		return nil, err
	}
	sub.Status = status
	sub.VerifiedAt = &now
	sub.Earnings = earnings

	if approve {
		payout := &models.Payout{
			SubmissionID: sub.ID,
			CreatorID:    sub.CreatorID,
			Amount:       earnings,
			Status:       models.PayoutStatusPending,
		}
		if err := s.payoutRepo.Create(ctx, payout); err != nil {
			s.log.Error("failed to create payout for approved submission",
				zap.String("submission_id", sub.ID.String()), zap.Error(err))
		} else {
			_ = s.publisher.Publish(ctx, events.Stream, events.Event{
				Type: events.EventPayoutCreated,
				Payload: map[string]any{
					"payout_id":  payout.ID.String(),
					"creator_id": sub.CreatorID.String(),
					"amount":     payout.Amount,
				},
			})
		}
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &session.UserID,
		ActorType:   "user",
		Action:      "submission_" + status,
		EntityType:  "submission",
		EntityID:    &sub.ID,
	})

	_ = s.publisher.Publish(ctx, events.Stream, events.Event{
		Type: events.EventSubmissionReviewed,
		Payload: map[string]any{
			"submission_id": sub.ID.String(),
			"creator_id":    sub.CreatorID.String(),
			"campaign_id":   sub.CampaignID.String(),
			"status":        status,
		},
	})

	return sub, nil
}

// computeEarnings snapshots what the submission earned at review time.
func computeEarnings(campaign *models.Campaign, sub *models.Submission) float64 {
	if campaign.RateType == models.RateTypePerThousand && campaign.RatePerThousand > 0 {
		earned := float64(sub.ViewCount) / 1000 * campaign.RatePerThousand
		if earned > campaign.TotalBudget {
			return campaign.TotalBudget
		}
		return earned
	}
	return 0
}

func (s *SubmissionService) ListForCampaign(ctx context.Context, session *rbac.Session, campaignID uuid.UUID, limit, offset int) ([]models.Submission, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}

	if !rbac.OwnershipExempt(session) && session.Role != models.RoleCreator {
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

	subs, err := s.submissionRepo.ListByCampaign(ctx, campaignID, limit, offset)
	if err != nil {
		return nil, err
	}

	// Creators only see their own rows.
	if session.Role == models.RoleCreator && !rbac.OwnershipExempt(session) {
		own := subs[:0]
		for _, sub := range subs {
			if sub.CreatorID == session.UserID {
				own = append(own, sub)
			}
		}
		subs = own
	}
	return subs, nil
}

func (s *SubmissionService) ListMine(ctx context.Context, session *rbac.Session, limit, offset int) ([]models.Submission, error) {
	return s.submissionRepo.ListByCreator(ctx, session.UserID, limit, offset)
}
