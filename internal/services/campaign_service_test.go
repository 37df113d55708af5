package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/rbac"
)

// Ownership is checked against the session's brand, not just the role:
// a brand user touching another brand's campaign is refused.
func TestUpdateOtherBrandsCampaign(t *testing.T) {
	campaign := &models.Campaign{ID: uuid.New(), BrandID: uuid.New(), Status: models.CampaignStatusDraft}

	ownerID := uuid.New()
	brands := &fakeBrandStore{brand: &models.Brand{ID: uuid.New(), OwnerID: ownerID}}
	svc := NewCampaignService(&fakeCampaignStore{campaign: campaign}, brands, &fakeApplicationStore{}, fakeAuditStore{}, nil, nil, zap.NewNop())

	session := &rbac.Session{UserID: ownerID, Role: models.RoleBrand}
	updated, err := svc.Update(context.Background(), session, campaign.ID, &models.Campaign{Title: "hijack"})
	require.Nil(t, updated)
	requireAppErr(t, err, apperr.Forbidden, "not the campaign owner", 403)
}

func TestDeleteOtherBrandsCampaign(t *testing.T) {
	campaign := &models.Campaign{ID: uuid.New(), BrandID: uuid.New(), Status: models.CampaignStatusDraft}

	ownerID := uuid.New()
	brands := &fakeBrandStore{brand: &models.Brand{ID: uuid.New(), OwnerID: ownerID}}
	svc := NewCampaignService(&fakeCampaignStore{campaign: campaign}, brands, &fakeApplicationStore{}, fakeAuditStore{}, nil, nil, zap.NewNop())

	err := svc.Delete(context.Background(), &rbac.Session{UserID: ownerID, Role: models.RoleBrand}, campaign.ID)
	requireAppErr(t, err, apperr.Forbidden, "not the campaign owner", 403)
}

func TestAdminBypassesOwnership(t *testing.T) {
	campaign := &models.Campaign{ID: uuid.New(), BrandID: uuid.New(), Status: models.CampaignStatusDraft}
	store := &fakeCampaignStore{campaign: campaign}
	svc := NewCampaignService(store, &fakeBrandStore{}, &fakeApplicationStore{}, fakeAuditStore{}, nil, nil, zap.NewNop())

	session := &rbac.Session{UserID: uuid.New(), Role: models.RoleAdmin, IsAdmin: true}
	updated, err := svc.Update(context.Background(), session, campaign.ID, &models.Campaign{Title: "admin edit"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, campaign.BrandID, updated.BrandID, "brand ownership must not change on update")
}
