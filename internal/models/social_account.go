package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported platforms
const (
	PlatformGoogle    = "google"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformInstagram = "instagram"
)

func IsValidPlatform(platform string) bool {
	switch platform {
	case PlatformGoogle, PlatformTikTok, PlatformYouTube, PlatformInstagram:
		return true
	default:
		return false
	}
}

// SocialAccount is one linked platform account. Version increments on every
// sync; updates are conditioned on it so concurrent syncs cannot clobber
// each other.
type SocialAccount struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Platform       string     `json:"platform"`
	PlatformUserID string     `json:"platform_user_id"`
	Username       string     `json:"username"`
	FollowerCount  int64      `json:"follower_count"`
	Verified       bool       `json:"verified"`
	AccessToken    *string    `json:"-"`
	RefreshToken   *string    `json:"-"`
	ConnectedAt    time.Time  `json:"connected_at"`
	LastSyncedAt   *time.Time `json:"last_synced_at,omitempty"`
	Version        int64      `json:"-"`
}
