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
	"github.com/izelavimelek/cliply/internal/repositories"
)

func creatorSession() *rbac.Session {
	return &rbac.Session{UserID: uuid.New(), Role: models.RoleCreator}
}

func TestApplyRequiresActiveCampaign(t *testing.T) {
	campaign := &models.Campaign{ID: uuid.New(), BrandID: uuid.New(), Status: models.CampaignStatusDraft}
	svc := NewApplicationService(&fakeApplicationStore{}, &fakeCampaignStore{campaign: campaign}, &fakeBrandStore{}, fakeAuditStore{}, zap.NewNop())

	app, err := svc.Apply(context.Background(), creatorSession(), campaign.ID, nil)
	require.Nil(t, app)
	requireAppErr(t, err, apperr.Validation, "Campaign is not active", 400)
}

func TestApplyTwiceRejected(t *testing.T) {
	campaign := &models.Campaign{ID: uuid.New(), BrandID: uuid.New(), Status: models.CampaignStatusActive}
	apps := &fakeApplicationStore{createErr: repositories.ErrDuplicate}
	svc := NewApplicationService(apps, &fakeCampaignStore{campaign: campaign}, &fakeBrandStore{}, fakeAuditStore{}, zap.NewNop())

	app, err := svc.Apply(context.Background(), creatorSession(), campaign.ID, nil)
	require.Nil(t, app)
	requireAppErr(t, err, apperr.Validation, "You have already applied", 400)
}

func TestApplyAutoApproves(t *testing.T) {
	campaign := &models.Campaign{ID: uuid.New(), BrandID: uuid.New(), Status: models.CampaignStatusActive}
	apps := &fakeApplicationStore{}
	svc := NewApplicationService(apps, &fakeCampaignStore{campaign: campaign}, &fakeBrandStore{}, fakeAuditStore{}, zap.NewNop())

	session := creatorSession()
	app, err := svc.Apply(context.Background(), session, campaign.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, models.ApplicationStatusApproved, app.Status)
	assert.Equal(t, session.UserID, app.CreatorID)
	assert.Equal(t, campaign.ID, app.CampaignID)
}

func TestApplyUnknownCampaign(t *testing.T) {
	svc := NewApplicationService(&fakeApplicationStore{}, &fakeCampaignStore{}, &fakeBrandStore{}, fakeAuditStore{}, zap.NewNop())

	app, err := svc.Apply(context.Background(), creatorSession(), uuid.New(), nil)
	require.Nil(t, app)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
