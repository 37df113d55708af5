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
	"github.com/izelavimelek/cliply/internal/social"
)

// syncRetries bounds how many times a stats sync re-reads after losing a
// version race.
const syncRetries = 3

type ProfileService struct {
	profileRepo ProfileStore
	socialRepo  SocialAccountStore
	registry    *social.Registry
	log         *zap.Logger
}

func NewProfileService(
	profileRepo ProfileStore,
	socialRepo SocialAccountStore,
	registry *social.Registry,
	log *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		socialRepo:  socialRepo,
		registry:    registry,
		log:         log,
	}
}

func (s *ProfileService) Get(ctx context.Context, session *rbac.Session) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, session.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		// Accounts created before profiles existed get one lazily.
		profile = &models.Profile{UserID: session.UserID, Theme: models.ThemeSystem}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, session *rbac.Session, displayName, bio *string) (*models.Profile, error) {
	if err := s.profileRepo.Update(ctx, session.UserID, displayName, bio); err != nil {
		return nil, err
	}
	return s.Get(ctx, session)
}

func (s *ProfileService) UpdateTheme(ctx context.Context, session *rbac.Session, theme string) error {
	if !models.IsValidTheme(theme) {
		return apperr.Validationf("invalid theme %q", theme)
	}
	return s.profileRepo.UpdateTheme(ctx, session.UserID, theme)
}

func (s *ProfileService) ListSocialAccounts(ctx context.Context, session *rbac.Session) ([]models.SocialAccount, error) {
	return s.socialRepo.ListByUser(ctx, session.UserID)
}

// SyncSocialAccount refreshes follower stats from the platform. The
// write is conditioned on the row version; a lost race re-reads and
// retries rather than overwriting someone else's sync.
func (s *ProfileService) SyncSocialAccount(ctx context.Context, session *rbac.Session, id uuid.UUID) (*models.SocialAccount, error) {
	account, err := s.ownedAccount(ctx, session, id)
	if err != nil {
		return nil, err
	}

	provider, err := s.registry.Get(account.Platform)
	if err != nil {
		return nil, apperr.Validationf("provider %q is not configured", account.Platform)
	}

	accessToken := ""
	if account.AccessToken != nil {
		accessToken = *account.AccessToken
	}
	stats, err := provider.FetchStats(ctx, &social.LinkedAccount{
		Platform:       account.Platform,
		PlatformUserID: account.PlatformUserID,
		Username:       account.Username,
		AccessToken:    accessToken,
		RefreshToken:   account.RefreshToken,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to fetch account stats", err)
	}

	for attempt := 0; attempt < syncRetries; attempt++ {
		err = s.socialRepo.UpdateStats(ctx, account.ID, account.Version, stats.FollowerCount, stats.Verified)
		if err == nil {
			return s.socialRepo.GetByID(ctx, account.ID)
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			return nil, err
		}
		account, err = s.socialRepo.GetByID(ctx, account.ID)
		if err != nil {
			return nil, err
		}
	}
	return nil, apperr.Conflictf("account stats changed concurrently")
}

func (s *ProfileService) DisconnectSocialAccount(ctx context.Context, session *rbac.Session, id uuid.UUID) error {
	if _, err := s.ownedAccount(ctx, session, id); err != nil {
		return err
	}
	return s.socialRepo.Delete(ctx, id, session.UserID)
}

func (s *ProfileService) ownedAccount(ctx context.Context, session *rbac.Session, id uuid.UUID) (*models.SocialAccount, error) {
	account, err := s.socialRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFoundf("social account not found")
	}
	if err != nil {
		return nil, err
	}
	if account.UserID != session.UserID && !rbac.OwnershipExempt(session) {
		return nil, apperr.Forbiddenf("not your social account")
	}
	return account, nil
}
