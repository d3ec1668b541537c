package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"bloodbank/internal/domain/service"
	"bloodbank/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes match events to a Pub/Sub topic with ordering keyed by donor,
// so the confirm and later release of a reservation reach ordered subscribers in sequence.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "match event topic %s is not available", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing match events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishMatchEvent waits for the server ack. A failed publish pauses the ordering key,
// so it is resumed before returning the error.
func (p *googlePubSubPublisher) PublishMatchEvent(ctx context.Context, event *service.MatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	key := event.DonorID
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: key,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		p.publisher.ResumePublish(key)

		return errors.Wrapf(err, "publish %s for match %s", event.Type, event.MatchID)
	}

	p.logger.Debug("Match event published",
		slog.String("type", event.Type),
		slog.String("match_id", event.MatchID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and closes the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
