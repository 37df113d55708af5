package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/auth"
	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/repositories"
	"github.com/izelavimelek/cliply/internal/social"
)

const oauthStateTTL = 10 * time.Minute

// AuthResult is a signed session plus the account it belongs to.
type AuthResult struct {
	Token string
	User  *models.User
}

type AuthService struct {
	userRepo    UserStore
	profileRepo ProfileStore
	brandRepo   BrandStore
	socialRepo  SocialAccountStore
	registry    *social.Registry
	rdb         *redis.Client
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthService(
	userRepo UserStore,
	profileRepo ProfileStore,
	brandRepo BrandStore,
	socialRepo SocialAccountStore,
	registry *social.Registry,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		brandRepo:   brandRepo,
		socialRepo:  socialRepo,
		registry:    registry,
		rdb:         rdb,
		cfg:         cfg,
		log:         log,
	}
}

// SignUp creates the account plus its empty profile, and a brand record
// when the role is brand. A session is issued immediately.
func (s *AuthService) SignUp(ctx context.Context, email, password, role string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) {
		return nil, apperr.Validationf("invalid email address")
	}
	if len(password) < s.cfg.MinPasswordLength {
		return nil, apperr.Validationf("Password must be at least %d characters", s.cfg.MinPasswordLength)
	}
	if role == "" {
		role = models.RoleCreator
	}
	if role == models.RoleAdmin || !models.IsValidRole(role) {
		return nil, apperr.Validationf("invalid role %q", role)
	}

	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: &hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Conflictf("Email already exists")
		}
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, &models.Profile{UserID: user.ID}); err != nil {
		s.log.Error("failed to create profile", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	if role == models.RoleBrand {
		brand := &models.Brand{OwnerID: user.ID, Name: brandNameFromEmail(email)}
		if err := s.brandRepo.Create(ctx, brand); err != nil {
			s.log.Error("failed to create brand", zap.String("user_id", user.ID.String()), zap.Error(err))
		}
	}

	return s.issueSession(user, s.cfg.SessionTTL)
}

// SignIn verifies credentials and issues a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.Unauthenticatedf("invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == nil || !auth.CheckPassword(*user.PasswordHash, password) {
		return nil, apperr.Unauthenticatedf("invalid email or password")
	}

	if err := s.userRepo.UpdateLastActive(ctx, user.ID); err != nil {
		s.log.Warn("failed to update last_active", zap.Error(err))
	}

	return s.issueSession(user, s.cfg.SessionTTL)
}

// AuthorizeURL starts an OAuth flow: the CSRF state is parked in redis
// and verified on callback.
func (s *AuthService) AuthorizeURL(ctx context.Context, provider string) (string, error) {
	p, err := s.registry.Get(provider)
	if err != nil {
		return "", apperr.Validationf("unsupported provider %q", provider)
	}
	state := uuid.NewString()
	if err := s.rdb.Set(ctx, oauthStateKey(state), provider, oauthStateTTL).Err(); err != nil {
		return "", apperr.Wrap(apperr.Upstream, "failed to store oauth state", err)
	}
	return p.AuthorizeURL(state), nil
}

// HandleCallback finishes an OAuth flow: the code is exchanged, the
// account upserted by email, the platform identity linked, and a
// longer-lived session issued.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthResult, error) {
	stored, err := s.rdb.GetDel(ctx, oauthStateKey(state)).Result()
	if errors.Is(err, redis.Nil) || (err == nil && stored != provider) {
		return nil, apperr.Unauthenticatedf("invalid or expired oauth state")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to verify oauth state", err)
	}

	p, err := s.registry.Get(provider)
	if err != nil {
		return nil, apperr.Validationf("unsupported provider %q", provider)
	}

	linked, err := p.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "oauth code exchange failed", err)
	}

	// Platforms that don't return an email get a synthetic address
	// derived from the platform identity.
	email := strings.ToLower(linked.Email)
	if email == "" {
		email = fmt.Sprintf("%s@%s.oauth.cliply.local", linked.PlatformUserID, linked.Platform)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		user = &models.User{Email: email, Role: models.RoleCreator}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		if err := s.profileRepo.Create(ctx, &models.Profile{UserID: user.ID}); err != nil {
			s.log.Error("failed to create profile", zap.String("user_id", user.ID.String()), zap.Error(err))
		}
	} else if err != nil {
		return nil, err
	}

	account := &models.SocialAccount{
		UserID:         user.ID,
		Platform:       linked.Platform,
		PlatformUserID: linked.PlatformUserID,
		Username:       linked.Username,
		FollowerCount:  linked.FollowerCount,
		Verified:       linked.Verified,
		AccessToken:    &linked.AccessToken,
		RefreshToken:   linked.RefreshToken,
	}
	if err := s.socialRepo.Upsert(ctx, account); err != nil {
		s.log.Error("failed to upsert social account",
			zap.String("user_id", user.ID.String()),
			zap.String("platform", linked.Platform),
			zap.Error(err))
	}

	if err := s.userRepo.UpdateLastActive(ctx, user.ID); err != nil {
		s.log.Warn("failed to update last_active", zap.Error(err))
	}

	return s.issueSession(user, s.cfg.OAuthSessionTTL)
}

func (s *AuthService) issueSession(user *models.User, ttl time.Duration) (*AuthResult, error) {
	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Email, user.Role, user.IsAdmin, ttl)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func oauthStateKey(state string) string {
	return "oauth:state:" + state
}

// validEmail is a shape check, not RFC validation. Deliverability is
// the mail server's problem.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

func brandNameFromEmail(email string) string {
	local := email[:strings.Index(email, "@")]
	return strings.ReplaceAll(local, ".", " ")
}
