package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/repositories"
)

func requireAppErr(t *testing.T, err error, kind apperr.Kind, message string, status int) {
	t.Helper()
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, kind, ae.Kind)
	assert.Equal(t, message, ae.Message)
	assert.Equal(t, status, apperr.StatusCode(ae.Kind))
}

func testAuthService(users *fakeUserStore) (*AuthService, *fakeBrandStore) {
	brands := &fakeBrandStore{}
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		SessionTTL:        time.Hour,
		MinPasswordLength: 6,
		BcryptCost:        4,
	}
	return NewAuthService(users, &fakeProfileStore{}, brands, nil, nil, nil, cfg, zap.NewNop()), brands
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc, _ := testAuthService(users)

	res, err := svc.SignUp(context.Background(), "new@example.com", "12345", models.RoleCreator)
	require.Nil(t, res)
	requireAppErr(t, err, apperr.Validation, "Password must be at least 6 characters", 400)
	assert.Nil(t, users.created, "no account should be created")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	users := &fakeUserStore{createErr: repositories.ErrDuplicate}
	svc, _ := testAuthService(users)

	res, err := svc.SignUp(context.Background(), "taken@example.com", "hunter22", models.RoleCreator)
	require.Nil(t, res)
	requireAppErr(t, err, apperr.Conflict, "Email already exists", 409)
}

func TestSignUpRejectsAdminRole(t *testing.T) {
	svc, _ := testAuthService(&fakeUserStore{})

	res, err := svc.SignUp(context.Background(), "sneaky@example.com", "hunter22", models.RoleAdmin)
	require.Nil(t, res)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestSignUpBrandCreatesBrandRecord(t *testing.T) {
	users := &fakeUserStore{}
	svc, brands := testAuthService(users)

	res, err := svc.SignUp(context.Background(), "acme.shop@example.com", "hunter22", models.RoleBrand)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, models.RoleBrand, res.User.Role)
	require.NotNil(t, brands.brand)
	assert.Equal(t, users.created.ID, brands.brand.OwnerID)
	assert.Equal(t, "acme shop", brands.brand.Name)
}
