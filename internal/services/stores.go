package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/repositories"
)

// Narrow persistence views consumed by the services. The concrete
// repositories in internal/repositories satisfy all of them; tests
// substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastActive(ctx context.Context, id uuid.UUID) error
}

type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, displayName, bio *string) error
	UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) error
}

type BrandStore interface {
	Create(ctx context.Context, b *models.Brand) error
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.Brand, error)
}

type SocialAccountStore interface {
	Upsert(ctx context.Context, a *models.SocialAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SocialAccount, error)
	UpdateStats(ctx context.Context, id uuid.UUID, version int64, followerCount int64, verified bool) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type CampaignStore interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	Update(ctx context.Context, c *models.Campaign) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repositories.CampaignFilter) ([]models.Campaign, error)
}

type ApplicationStore interface {
	Create(ctx context.Context, a *models.CampaignApplication) error
	HasApproved(ctx context.Context, campaignID, creatorID uuid.UUID) (bool, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]models.CampaignApplication, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]models.CampaignApplication, error)
}

type SubmissionStore interface {
	Create(ctx context.Context, s *models.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	Review(ctx context.Context, id uuid.UUID, status string, verifiedAt time.Time, earnings float64) error
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]models.Submission, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]models.Submission, error)
}

type PayoutStore interface {
	Create(ctx context.Context, p *models.Payout) error
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]models.Payout, error)
}

type AnnouncementStore interface {
	Create(ctx context.Context, a *models.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]models.Announcement, error)
}

type AuditStore interface {
	Log(ctx context.Context, entry models.AuditLog) error
}
