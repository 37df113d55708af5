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
	tiktokAuthURL     = "https://www.tiktok.com/v2/auth/authorize/"
	tiktokTokenURL    = "https://open.tiktokapis.com/v2/oauth/token/"
	tiktokUserInfoURL = "https://open.tiktokapis.com/v2/user/info/?fields=open_id,display_name,follower_count,is_verified"
)

type TikTokProvider struct {
	clientKey    string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	log          *zap.Logger
}

func NewTikTokProvider(cfg *config.Config, log *zap.Logger) *TikTokProvider {
	return &TikTokProvider{
		clientKey:    cfg.TikTokClientKey,
		clientSecret: cfg.TikTokClientSecret,
		redirectURI:  cfg.RedirectURI(models.PlatformTikTok),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		log:          log,
	}
}

func (p *TikTokProvider) Platform() string { return models.PlatformTikTok }

func (p *TikTokProvider) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_key", p.clientKey)
	q.Set("redirect_uri", p.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "user.info.basic,user.info.stats")
	q.Set("state", state)
	return tiktokAuthURL + "?" + q.Encode()
}

type tiktokUserInfo struct {
	Data struct {
		User struct {
			OpenID        string `json:"open_id"`
			DisplayName   string `json:"display_name"`
			FollowerCount int64  `json:"follower_count"`
			IsVerified    bool   `json:"is_verified"`
		} `json:"user"`
	} `json:"data"`
}

func (p *TikTokProvider) ExchangeCode(ctx context.Context, code string) (*LinkedAccount, error) {
	form := url.Values{}
	form.Set("client_key", p.clientKey)
	form.Set("client_secret", p.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", p.redirectURI)

	var tok struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		OpenID       string `json:"open_id"`
	}
	if err := postForm(ctx, p.httpClient, tiktokTokenURL, form, &tok); err != nil {
		return nil, fmt.Errorf("tiktok token exchange: %w", err)
	}

	var info tiktokUserInfo
	if err := getJSON(ctx, p.httpClient, tiktokUserInfoURL, tok.AccessToken, &info); err != nil {
		return nil, fmt.Errorf("tiktok user info: %w", err)
	}

	user := info.Data.User
	platformUserID := user.OpenID
	if platformUserID == "" {
		platformUserID = tok.OpenID
	}

	account := &LinkedAccount{
		Platform:       models.PlatformTikTok,
		PlatformUserID: platformUserID,
		Username:       user.DisplayName,
		FollowerCount:  user.FollowerCount,
		Verified:       user.IsVerified,
		AccessToken:    tok.AccessToken,
	}
	if tok.RefreshToken != "" {
		account.RefreshToken = &tok.RefreshToken
	}
	return account, nil
}

func (p *TikTokProvider) FetchStats(ctx context.Context, account *LinkedAccount) (*AccountStats, error) {
	var info tiktokUserInfo
	if err := getJSON(ctx, p.httpClient, tiktokUserInfoURL, account.AccessToken, &info); err != nil {
		return nil, fmt.Errorf("tiktok stats: %w", err)
	}
	return &AccountStats{
		FollowerCount: info.Data.User.FollowerCount,
		Verified:      info.Data.User.IsVerified,
	}, nil
}
