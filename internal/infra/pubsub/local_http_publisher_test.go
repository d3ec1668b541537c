package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bloodbank/internal/domain/constants"
	"bloodbank/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.MatchEvent {
	return &service.MatchEvent{
		RequestID:  "req-123",
		Type:       constants.EventMatchConfirmed,
		MatchID:    "0b8f5c2e-6a1d-4c1e-9d7e-2f1f3f4a5b6c",
		DonorID:    "d1",
		PatientID:  "p1",
		City:       "Karachi",
		OccurredAt: time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishMatchEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventMatchConfirmed, received.Message.Attributes["type"])
	assert.Equal(t, "Karachi", received.Message.Attributes["city"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.MatchEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, testEvent().MatchID, event.MatchID)
	assert.Equal(t, "d1", event.DonorID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishMatchEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNoopPublisher_AcceptsEverything(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	require.NoError(t, publisher.PublishMatchEvent(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())
}
