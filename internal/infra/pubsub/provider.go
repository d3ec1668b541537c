// Package pubsub publishes committed match lifecycle events.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"bloodbank/config"
	"bloodbank/internal/domain/constants"
	"bloodbank/internal/domain/service"
	"bloodbank/internal/errors"

	"go.uber.org/fx"
)

const defaultPublishTimeout = 5 * time.Second

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher returns the publisher named by pubsub.provider, bounded by
// pubsub.publishTimeout. An empty provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing match event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &boundedPublisher{next: publisher, timeout: timeout}, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case "":
		logger.Info("Match events disabled, no pubsub provider configured")

		return &noopPublisher{logger: logger}, nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing match events over local HTTP push", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// boundedPublisher detaches publishing from the caller's cancellation and caps its duration.
// Events describe changes that are already committed, so an aborted request must not drop them.
type boundedPublisher struct {
	next    service.EventPublisher
	timeout time.Duration
}

func (p *boundedPublisher) PublishMatchEvent(ctx context.Context, event *service.MatchEvent) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	return p.next.PublishMatchEvent(ctx, event)
}

func (p *boundedPublisher) Close() error {
	return p.next.Close()
}

// Module provides the match EventPublisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
