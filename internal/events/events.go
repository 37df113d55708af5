package events

import "context"

// Event types
const (
	EventCampaignStatusChanged = "campaign_status_changed"
	EventSubmissionReviewed    = "submission_reviewed"
	EventAnnouncementPosted    = "announcement_posted"
	EventPayoutCreated         = "payout_created"
)

// Stream is the redis channel all domain events are published on.
const Stream = "events:domain"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
