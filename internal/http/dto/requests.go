package dto

import "time"

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // creator (default) or brand
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// Campaigns

type CampaignRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Objective   string   `json:"objective"`
	Category    string   `json:"category"`
	Platforms   []string `json:"platforms"`

	TotalBudget        float64    `json:"total_budget"`
	RateType           string     `json:"rate_type"`
	RatePerThousand    float64    `json:"rate_per_thousand"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	SubmissionDeadline *time.Time `json:"submission_deadline,omitempty"`

	ClipsCount          int  `json:"clips_count"`
	LongVideosCount     int  `json:"long_videos_count"`
	LogoPlacement       bool `json:"logo_placement"`
	BrandMention        bool `json:"brand_mention"`
	CallToAction        bool `json:"call_to_action"`
	HashtagRequirements bool `json:"hashtag_requirements"`

	TargetGeography []string `json:"target_geography"`
	TargetLanguages []string `json:"target_languages"`
	TargetAgeMin    *int     `json:"target_age_min,omitempty"`
	TargetAgeMax    *int     `json:"target_age_max,omitempty"`

	ContentGuidelinesAccepted bool `json:"content_guidelines_accepted"`
	TermsAccepted             bool `json:"terms_accepted"`

	AssetURLs []string `json:"asset_urls"`
}

type CampaignStatusRequest struct {
	Status string `json:"status"`
}

type ApplyRequest struct {
	Message *string `json:"message,omitempty"`
}

type CreateSubmissionRequest struct {
	CampaignID string `json:"campaign_id"`
	PostURL    string `json:"post_url"`
	Platform   string `json:"platform"`
}

type ReviewRequest struct {
	Action string `json:"action"` // approve or reject
}

type AnnouncementRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority,omitempty"`
	Pinned   bool   `json:"pinned,omitempty"`
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Pinned   *bool   `json:"pinned,omitempty"`
}
