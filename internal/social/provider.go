// Package social holds the OAuth provider clients used for account linking
// and the public-profile stats parser used to refresh follower counts.
package social

import (
	"context"
	"fmt"

	"github.com/izelavimelek/cliply/internal/config"
	"go.uber.org/zap"
)

// LinkedAccount is what a provider yields after a successful code
// exchange: enough to persist a connected social account.
type LinkedAccount struct {
	Platform       string
	PlatformUserID string
	Username       string
	Email          string // empty when the platform does not expose one
	FollowerCount  int64
	Verified       bool
	AccessToken    string
	RefreshToken   *string
}

// AccountStats is a refreshed follower snapshot for an already linked
// account.
type AccountStats struct {
	FollowerCount int64
	Verified      bool
}

// Provider is one OAuth platform integration.
type Provider interface {
	// Platform returns the platform identifier (models.Platform*).
	Platform() string
	// AuthorizeURL builds the URL the client is redirected to, carrying
	// the caller-supplied CSRF state.
	AuthorizeURL(state string) string
	// ExchangeCode trades an authorization code for tokens and the
	// account's identity and audience size.
	ExchangeCode(ctx context.Context, code string) (*LinkedAccount, error)
	// FetchStats refreshes follower count and verification for a linked
	// account.
	FetchStats(ctx context.Context, account *LinkedAccount) (*AccountStats, error)
}

// Registry resolves providers by platform name.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(cfg *config.Config, log *zap.Logger) *Registry {
	r := &Registry{providers: make(map[string]Provider)}

	if cfg.GoogleClientID != "" {
		r.register(NewGoogleProvider(cfg, log))
	}
	if cfg.TikTokClientKey != "" {
		r.register(NewTikTokProvider(cfg, log))
	}
	if cfg.YouTubeClientID != "" {
		r.register(NewYouTubeProvider(cfg, log))
	}
	if cfg.InstagramClientID != "" {
		r.register(NewInstagramProvider(cfg, log))
	}

	return r
}

func (r *Registry) register(p Provider) {
	r.providers[p.Platform()] = p
}

func (r *Registry) Get(platform string) (Provider, error) {
	p, ok := r.providers[platform]
	if !ok {
		return nil, fmt.Errorf("provider %q is not configured", platform)
	}
	return p, nil
}
