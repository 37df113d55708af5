package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/campaignval"
	"github.com/izelavimelek/cliply/internal/events"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/rbac"
	"github.com/izelavimelek/cliply/internal/repositories"
)

type CampaignService struct {
	campaignRepo CampaignStore
	brandRepo    BrandStore
	appRepo      ApplicationStore
	auditRepo    AuditStore
	billing      PaymentStatusChecker
	publisher    events.Publisher
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo CampaignStore,
	brandRepo BrandStore,
	appRepo ApplicationStore,
	auditRepo AuditStore,
	billing PaymentStatusChecker,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
		appRepo:      appRepo,
		auditRepo:    auditRepo,
		billing:      billing,
		publisher:    publisher,
		log:          log,
	}
}

// ownedBrand resolves the brand owned by the session user.
func (s *CampaignService) ownedBrand(ctx context.Context, session *rbac.Session) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByOwnerID(ctx, session.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.Forbiddenf("no brand for this account")
	}
	if err != nil {
		return nil, err
	}
	return brand, nil
}

// authorizeWrite checks that the session's brand owns the campaign. Admin
// sessions bypass ownership.
func (s *CampaignService) authorizeWrite(ctx context.Context, session *rbac.Session, c *models.Campaign) error {
	if rbac.OwnershipExempt(session) {
		return nil
	}
	brand, err := s.ownedBrand(ctx, session)
	if err != nil {
		return err
	}
	if c.BrandID != brand.ID {
		return apperr.Forbiddenf("not the campaign owner")
	}
	return nil
}

// authorizeRead additionally lets creators with an approved application
// see the campaign, and anyone see active ones.
func (s *CampaignService) authorizeRead(ctx context.Context, session *rbac.Session, c *models.Campaign) error {
	if c.Status == models.CampaignStatusActive || rbac.OwnershipExempt(session) {
		return nil
	}
	if session.Role == models.RoleCreator {
		approved, err := s.appRepo.HasApproved(ctx, c.ID, session.UserID)
		if err != nil {
			return err
		}
		if approved {
			return nil
		}
		return apperr.Forbiddenf("no approved application for this campaign")
	}
	return s.authorizeWrite(ctx, session, c)
}

func (s *CampaignService) Create(ctx context.Context, session *rbac.Session, c *models.Campaign) error {
	brand, err := s.ownedBrand(ctx, session)
	if err != nil {
		return err
	}

	c.BrandID = brand.ID
	c.Status = models.CampaignStatusDraft

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &session.UserID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	return nil
}

func (s *CampaignService) GetByID(ctx context.Context, session *rbac.Session, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the session brand's campaigns; creators browse active ones.
func (s *CampaignService) List(ctx context.Context, session *rbac.Session, f repositories.CampaignFilter) ([]models.Campaign, error) {
	if session.Role == models.RoleCreator {
		status := models.CampaignStatusActive
		f.Status = &status
		f.BrandID = nil
		return s.campaignRepo.List(ctx, f)
	}

	brand, err := s.ownedBrand(ctx, session)
	if err != nil {
		return nil, err
	}
	f.BrandID = &brand.ID
	return s.campaignRepo.List(ctx, f)
}

func (s *CampaignService) Update(ctx context.Context, session *rbac.Session, id uuid.UUID, c *models.Campaign) (*models.Campaign, error) {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(ctx, session, existing); err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.BrandID = existing.BrandID
	c.Status = existing.Status

	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) Delete(ctx context.Context, session *rbac.Session, id uuid.UUID) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return err
	}
	if err := s.authorizeWrite(ctx, session, existing); err != nil {
		return err
	}
	if existing.Status != models.CampaignStatusDraft {
		return apperr.Validationf("only draft campaigns can be deleted")
	}
	return s.campaignRepo.Delete(ctx, id)
}

// Completion returns wizard progress for the owner.
func (s *CampaignService) Completion(ctx context.Context, session *rbac.Session, id uuid.UUID) (*models.Campaign, campaignval.Completion, map[string]bool, error) {
	c, err := s.GetByID(ctx, session, id)
	if err != nil {
		return nil, campaignval.Completion{}, nil, err
	}
	return c, campaignval.CompletionCount(c), campaignval.SectionStatuses(c), nil
}

// CheckPublish runs the publishing gate without changing state. Billing
// errors count as no payment method.
func (s *CampaignService) CheckPublish(ctx context.Context, session *rbac.Session, id uuid.UUID) (*campaignval.PublishCheck, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(ctx, session, c); err != nil {
		return nil, err
	}

	hasPayment, err := s.billing.HasPaymentMethod(ctx, c.BrandID)
	if err != nil {
		s.log.Warn("payment status check failed, treating as missing",
			zap.String("brand_id", c.BrandID.String()), zap.Error(err))
		hasPayment = false
	}

	check := campaignval.EvaluatePublish(c, hasPayment)
	return &check, nil
}

// Publish moves a passing draft to pending_approval.
func (s *CampaignService) Publish(ctx context.Context, session *rbac.Session, id uuid.UUID) (*campaignval.PublishCheck, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(ctx, session, c); err != nil {
		return nil, err
	}
	if c.Status != models.CampaignStatusDraft {
		return nil, apperr.Validationf("only draft campaigns can be published")
	}

	check, err := s.CheckPublish(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if !check.CanPublish {
		return check, nil
	}

	if err := s.transition(ctx, c, models.CampaignStatusPendingApproval, &session.UserID, "user"); err != nil {
		return nil, err
	}
	return check, nil
}

// Transition applies an owner-driven status change (pause, resume,
// complete).
func (s *CampaignService) Transition(ctx context.Context, session *rbac.Session, id uuid.UUID, to string) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(ctx, session, c); err != nil {
		return nil, err
	}

	// Entering and leaving pending_approval is reserved for Publish and
	// the admin review.
	if to == models.CampaignStatusPendingApproval || c.Status == models.CampaignStatusPendingApproval {
		return nil, apperr.Validationf("status %q is managed by the review flow", models.CampaignStatusPendingApproval)
	}

	if err := s.transition(ctx, c, to, &session.UserID, "user"); err != nil {
		return nil, err
	}
	return c, nil
}

// AdminReview resolves a pending_approval campaign: approve activates it,
// reject returns it to draft.
func (s *CampaignService) AdminReview(ctx context.Context, session *rbac.Session, id uuid.UUID, approve bool) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if err != nil {
		return nil, err
	}

	to := models.CampaignStatusActive
	if !approve {
		to = models.CampaignStatusDraft
	}
	if err := s.transition(ctx, c, to, &session.UserID, "admin"); err != nil {
		return nil, err
	}
	return c, nil
}

// ListPendingApproval feeds the admin review queue.
func (s *CampaignService) ListPendingApproval(ctx context.Context, limit, offset int) ([]models.Campaign, error) {
	status := models.CampaignStatusPendingApproval
	return s.campaignRepo.List(ctx, repositories.CampaignFilter{Status: &status, Limit: limit, Offset: offset})
}

// transition validates and performs a status change with audit logging and
// an event. The conditional update keeps concurrent transitions from
// double-applying.
func (s *CampaignService) transition(ctx context.Context, c *models.Campaign, newStatus string, actorID *uuid.UUID, actorType string) error {
	if !models.IsValidCampaignTransition(c.Status, newStatus) {
		return apperr.Validationf("invalid transition from %s to %s", c.Status, newStatus)
	}

	oldStatus := c.Status
	if err := s.campaignRepo.UpdateStatus(ctx, c.ID, oldStatus, newStatus); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			return apperr.Conflictf("campaign status changed concurrently")
		}
		return err
	}
	c.Status = newStatus

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: actorID,
		ActorType:   actorType,
		Action:      "campaign_status_" + oldStatus + "_to_" + newStatus,
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	_ = s.publisher.Publish(ctx, events.Stream, events.Event{
		Type: events.EventCampaignStatusChanged,
		Payload: map[string]any{
			"campaign_id": c.ID.String(),
			"brand_id":    c.BrandID.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
	})

	return nil
}
