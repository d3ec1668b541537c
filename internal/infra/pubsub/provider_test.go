package pubsub

import (
	"context"
	"testing"
	"time"

	"bloodbank/config"
	"bloodbank/internal/domain/constants"
	"bloodbank/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: newDiscardLogger(),
	}
}

func TestNewEventPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured"},
		{name: "disabled", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8090/events"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topicId"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(newPublisherParams(t, tt.cfg))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			bounded, ok := publisher.(*boundedPublisher)
			require.True(t, ok)
			assert.Equal(t, defaultPublishTimeout, bounded.timeout)
		})
	}
}

type ctxRecorder struct {
	err      error
	deadline bool
}

func (r *ctxRecorder) PublishMatchEvent(ctx context.Context, _ *service.MatchEvent) error {
	r.err = ctx.Err()
	_, r.deadline = ctx.Deadline()

	return nil
}

func (r *ctxRecorder) Close() error { return nil }

func TestBoundedPublisher_IgnoresCallerCancellation(t *testing.T) {
	recorder := &ctxRecorder{}
	publisher := &boundedPublisher{next: recorder, timeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, publisher.PublishMatchEvent(ctx, testEvent()))
	assert.NoError(t, recorder.err)
	assert.True(t, recorder.deadline)
}
