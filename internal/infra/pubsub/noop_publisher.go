package pubsub

import (
	"context"
	"log/slog"

	"bloodbank/internal/domain/service"
)

// noopPublisher drops events when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishMatchEvent(_ context.Context, event *service.MatchEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("type", event.Type),
		slog.String("match_id", event.MatchID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.MatchEvent) map[string]string {
	attributes := map[string]string{
		"type":     event.Type,
		"match_id": event.MatchID,
		"city":     event.City,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
