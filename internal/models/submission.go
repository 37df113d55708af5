package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission statuses
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

type Submission struct {
	ID         uuid.UUID  `json:"id"`
	CampaignID uuid.UUID  `json:"campaign_id"`
	CreatorID  uuid.UUID  `json:"creator_id"`
	PostURL    string     `json:"post_url"`
	Platform   string     `json:"platform"`
	Status     string     `json:"status"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	ViewCount  int64      `json:"view_count"`
	Earnings   float64    `json:"earnings"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
