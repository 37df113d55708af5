package models

import (
	"time"

	"github.com/google/uuid"
)

// Payout statuses
const (
	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusPaid       = "paid"
	PayoutStatusFailed     = "failed"
)

type Payout struct {
	ID           uuid.UUID  `json:"id"`
	SubmissionID uuid.UUID  `json:"submission_id"`
	CreatorID    uuid.UUID  `json:"creator_id"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
