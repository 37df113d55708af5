package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft           = "draft"
	CampaignStatusPendingApproval = "pending_approval"
	CampaignStatusActive          = "active"
	CampaignStatusPaused          = "paused"
	CampaignStatusCompleted       = "completed"
)

// Valid status transitions: from -> []to. Publishing a draft moves it to
// pending_approval; an admin review moves it to active (or back to draft
// on rejection).
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusDraft:           {CampaignStatusPendingApproval},
	CampaignStatusPendingApproval: {CampaignStatusActive, CampaignStatusDraft},
	CampaignStatusActive:          {CampaignStatusPaused, CampaignStatusCompleted},
	CampaignStatusPaused:          {CampaignStatusActive, CampaignStatusCompleted},
	CampaignStatusCompleted:       {},
}

func IsValidCampaignTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Rate types
const (
	RateTypePerThousand = "per_thousand_views"
	RateTypeFixed       = "fixed"
)

type Campaign struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brand_id"`
	Status  string    `json:"status"`

	// Overview
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Objective   string   `json:"objective"`
	Category    string   `json:"category"`
	Platforms   []string `json:"platforms"`

	// Budget & timeline
	TotalBudget        float64    `json:"total_budget"`
	RateType           string     `json:"rate_type"`
	RatePerThousand    float64    `json:"rate_per_thousand"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	SubmissionDeadline *time.Time `json:"submission_deadline,omitempty"`

	// Content requirements
	ClipsCount          int  `json:"clips_count"`
	LongVideosCount     int  `json:"long_videos_count"`
	LogoPlacement       bool `json:"logo_placement"`
	BrandMention        bool `json:"brand_mention"`
	CallToAction        bool `json:"call_to_action"`
	HashtagRequirements bool `json:"hashtag_requirements"`

	// Audience targeting
	TargetGeography []string `json:"target_geography"`
	TargetLanguages []string `json:"target_languages"`
	TargetAgeMin    *int     `json:"target_age_min,omitempty"`
	TargetAgeMax    *int     `json:"target_age_max,omitempty"`

	// Agreements & compliance
	ContentGuidelinesAccepted bool `json:"content_guidelines_accepted"`
	TermsAccepted             bool `json:"terms_accepted"`

	// Assets
	AssetURLs []string `json:"asset_urls"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
