package social

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/models"
)

const (
	instagramAuthURL  = "https://api.instagram.com/oauth/authorize"
	instagramTokenURL = "https://api.instagram.com/oauth/access_token"
	instagramMeURL    = "https://graph.instagram.com/me?fields=id,username"
)

// InstagramProvider links via the Basic Display API, which exposes identity
// but no follower count; stats come from the public profile parser.
type InstagramProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	parser       *ProfileParser
	log          *zap.Logger
}

func NewInstagramProvider(cfg *config.Config, log *zap.Logger) *InstagramProvider {
	return &InstagramProvider{
		clientID:     cfg.InstagramClientID,
		clientSecret: cfg.InstagramClientSecret,
		redirectURI:  cfg.RedirectURI(models.PlatformInstagram),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		parser:       NewProfileParser(cfg.StatsFetchTimeoutMS, cfg.StatsFetchMaxRetries, log),
		log:          log,
	}
}

func (p *InstagramProvider) Platform() string { return models.PlatformInstagram }

func (p *InstagramProvider) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("redirect_uri", p.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "user_profile")
	q.Set("state", state)
	return instagramAuthURL + "?" + q.Encode()
}

func (p *InstagramProvider) ExchangeCode(ctx context.Context, code string) (*LinkedAccount, error) {
	form := url.Values{}
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", p.redirectURI)

	var tok struct {
		AccessToken string `json:"access_token"`
		UserID      int64  `json:"user_id"`
	}
	if err := postForm(ctx, p.httpClient, instagramTokenURL, form, &tok); err != nil {
		return nil, fmt.Errorf("instagram token exchange: %w", err)
	}

	var me struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	if err := getJSON(ctx, p.httpClient, instagramMeURL+"&access_token="+url.QueryEscape(tok.AccessToken), "", &me); err != nil {
		return nil, fmt.Errorf("instagram me: %w", err)
	}

	account := &LinkedAccount{
		Platform:       models.PlatformInstagram,
		PlatformUserID: me.ID,
		Username:       me.Username,
		AccessToken:    tok.AccessToken,
	}

	// Follower count is not in the Basic Display API; best effort from the
	// public profile.
	if profile, err := p.parser.FetchProfile(ctx, models.PlatformInstagram, me.Username); err == nil {
		account.FollowerCount = profile.FollowerCount
		account.Verified = profile.Verified
	} else {
		p.log.Debug("instagram public profile fetch failed", zap.Error(err))
	}

	return account, nil
}

func (p *InstagramProvider) FetchStats(ctx context.Context, account *LinkedAccount) (*AccountStats, error) {
	profile, err := p.parser.FetchProfile(ctx, models.PlatformInstagram, account.Username)
	if err != nil {
		return nil, fmt.Errorf("instagram stats: %w", err)
	}
	return &AccountStats{FollowerCount: profile.FollowerCount, Verified: profile.Verified}, nil
}
