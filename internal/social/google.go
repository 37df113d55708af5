package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/models"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// GoogleProvider links a Google identity. Google accounts have no audience
// size, so follower count stays zero; the account is used for OAuth
// sign-in.
type GoogleProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	log          *zap.Logger
}

func NewGoogleProvider(cfg *config.Config, log *zap.Logger) *GoogleProvider {
	return &GoogleProvider{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.RedirectURI(models.PlatformGoogle),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		log:          log,
	}
}

func (p *GoogleProvider) Platform() string { return models.PlatformGoogle }

func (p *GoogleProvider) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("redirect_uri", p.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("access_type", "offline")
	q.Set("state", state)
	return googleAuthURL + "?" + q.Encode()
}

func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*LinkedAccount, error) {
	form := url.Values{}
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", p.redirectURI)

	var tok struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := postForm(ctx, p.httpClient, googleTokenURL, form, &tok); err != nil {
		return nil, fmt.Errorf("google token exchange: %w", err)
	}

	var info struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		EmailVerified bool   `json:"email_verified"`
	}
	if err := getJSON(ctx, p.httpClient, googleUserinfoURL, tok.AccessToken, &info); err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}

	username := info.Name
	if username == "" {
		username = info.Email
	}

	account := &LinkedAccount{
		Platform:       models.PlatformGoogle,
		PlatformUserID: info.Sub,
		Username:       username,
		Email:          info.Email,
		Verified:       info.EmailVerified,
		AccessToken:    tok.AccessToken,
	}
	if tok.RefreshToken != "" {
		account.RefreshToken = &tok.RefreshToken
	}
	return account, nil
}

func (p *GoogleProvider) FetchStats(ctx context.Context, account *LinkedAccount) (*AccountStats, error) {
	// No audience metric on a bare Google identity.
	return &AccountStats{FollowerCount: account.FollowerCount, Verified: account.Verified}, nil
}

// postForm submits a form-encoded request and decodes the JSON response.
func postForm(ctx context.Context, client *http.Client, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("provider unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// getJSON performs an authorized GET and decodes the JSON response.
func getJSON(ctx context.Context, client *http.Client, endpoint, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("provider unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
