package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/repositories"
)

// In-memory store fakes. Each embeds its interface so only the methods a
// test exercises need an implementation; anything else panics loudly.

type fakeUserStore struct {
	UserStore
	createErr error
	users     map[string]*models.User
	created   *models.User
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = uuid.New()
	f.created = u
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserStore) UpdateLastActive(context.Context, uuid.UUID) error { return nil }

type fakeProfileStore struct {
	ProfileStore
}

func (f *fakeProfileStore) Create(context.Context, *models.Profile) error { return nil }

type fakeBrandStore struct {
	BrandStore
	brand *models.Brand
}

func (f *fakeBrandStore) Create(_ context.Context, b *models.Brand) error {
	b.ID = uuid.New()
	f.brand = b
	return nil
}

func (f *fakeBrandStore) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*models.Brand, error) {
	if f.brand == nil || f.brand.OwnerID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return f.brand, nil
}

type fakeCampaignStore struct {
	CampaignStore
	campaign *models.Campaign
}

func (f *fakeCampaignStore) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	if f.campaign == nil || f.campaign.ID != id {
		return nil, repositories.ErrNotFound
	}
	return f.campaign, nil
}

func (f *fakeCampaignStore) Update(_ context.Context, c *models.Campaign) error {
	f.campaign = c
	return nil
}

type fakeApplicationStore struct {
	ApplicationStore
	createErr error
	created   *models.CampaignApplication
}

func (f *fakeApplicationStore) Create(_ context.Context, a *models.CampaignApplication) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = uuid.New()
	f.created = a
	return nil
}

type fakeAuditStore struct{}

func (fakeAuditStore) Log(context.Context, models.AuditLog) error { return nil }
