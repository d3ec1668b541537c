package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "bloodbank/internal/delivery/context"
	"bloodbank/internal/domain/service"
	"bloodbank/internal/errors"

	"github.com/google/uuid"
)

const localSubscription = "projects/local/subscriptions/match-events"

// PushMessage is the body Google Pub/Sub posts to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// newPushMessage wraps an encoded event the way a push subscription would deliver it.
func newPushMessage(event *service.MatchEvent, data []byte, now time.Time) *PushMessage {
	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339Nano)

	return msg
}

// localHTTPPublisher delivers events straight to a worker's push endpoint, standing in for
// a Pub/Sub push subscription during development.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts push messages to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishMatchEvent(ctx context.Context, event *service.MatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}
	body, err := json.Marshal(newPushMessage(event, data, time.Now()))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.Debug("Match event pushed",
		slog.String("type", event.Type),
		slog.String("match_id", event.MatchID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
