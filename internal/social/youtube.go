package social

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/config"
	"github.com/izelavimelek/cliply/internal/models"
)

const youtubeChannelsURL = "https://www.googleapis.com/youtube/v3/channels?part=snippet,statistics&mine=true"

// YouTubeProvider reuses Google's OAuth endpoints with YouTube scopes; the
// audience metric is the channel's subscriber count.
type YouTubeProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	log          *zap.Logger
}

func NewYouTubeProvider(cfg *config.Config, log *zap.Logger) *YouTubeProvider {
	return &YouTubeProvider{
		clientID:     cfg.YouTubeClientID,
		clientSecret: cfg.YouTubeClientSecret,
		redirectURI:  cfg.RedirectURI(models.PlatformYouTube),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		log:          log,
	}
}

func (p *YouTubeProvider) Platform() string { return models.PlatformYouTube }

func (p *YouTubeProvider) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("redirect_uri", p.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "https://www.googleapis.com/auth/youtube.readonly")
	q.Set("access_type", "offline")
	q.Set("state", state)
	return googleAuthURL + "?" + q.Encode()
}

type youtubeChannelList struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (p *YouTubeProvider) ExchangeCode(ctx context.Context, code string) (*LinkedAccount, error) {
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
		return nil, fmt.Errorf("youtube token exchange: %w", err)
	}

	var channels youtubeChannelList
	if err := getJSON(ctx, p.httpClient, youtubeChannelsURL, tok.AccessToken, &channels); err != nil {
		return nil, fmt.Errorf("youtube channels: %w", err)
	}
	if len(channels.Items) == 0 {
		return nil, fmt.Errorf("no youtube channel on this account")
	}

	ch := channels.Items[0]
	subscribers, _ := strconv.ParseInt(ch.Statistics.SubscriberCount, 10, 64)

	account := &LinkedAccount{
		Platform:       models.PlatformYouTube,
		PlatformUserID: ch.ID,
		Username:       ch.Snippet.Title,
		FollowerCount:  subscribers,
		AccessToken:    tok.AccessToken,
	}
	if tok.RefreshToken != "" {
		account.RefreshToken = &tok.RefreshToken
	}
	return account, nil
}

func (p *YouTubeProvider) FetchStats(ctx context.Context, account *LinkedAccount) (*AccountStats, error) {
	var channels youtubeChannelList
	if err := getJSON(ctx, p.httpClient, youtubeChannelsURL, account.AccessToken, &channels); err != nil {
		return nil, fmt.Errorf("youtube stats: %w", err)
	}
	if len(channels.Items) == 0 {
		return nil, fmt.Errorf("no youtube channel on this account")
	}

	subscribers, _ := strconv.ParseInt(channels.Items[0].Statistics.SubscriberCount, 10, 64)
	return &AccountStats{FollowerCount: subscribers, Verified: account.Verified}, nil
}
