package service

import (
	"context"
	"time"
)

// MatchEvent describes a committed match lifecycle change.
type MatchEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // match.confirmed or match.released
	MatchID    string    `json:"match_id"`
	DonorID    string    `json:"donor_id"`
	PatientID  string    `json:"patient_id"`
	City       string    `json:"city"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a match lifecycle event
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
