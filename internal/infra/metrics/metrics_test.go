package metrics

import (
	"testing"
	"time"

	"bloodbank/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveConfirm(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveConfirm(service.OutcomeSuccess, 10*time.Millisecond)
	m.ObserveConfirm(service.OutcomePreconditionFailed, 5*time.Millisecond)
	m.ObserveConfirm(service.OutcomePreconditionFailed, 5*time.Millisecond)
	m.ObserveRelease(service.OutcomeNotFound, time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(m.LifecycleOutcome.WithLabelValues("confirm", service.OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.LifecycleOutcome.WithLabelValues("confirm", service.OutcomePreconditionFailed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LifecycleOutcome.WithLabelValues("release", service.OutcomeNotFound)), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveConfirm(service.OutcomeSuccess, time.Millisecond)
		m.ObserveRelease(service.OutcomeSuccess, time.Millisecond)
		m.ObserveCandidates(3)
		m.ObserveEvent("match.confirmed")
	})
}

func TestNewRegistry_GathersRuntimeCollectors(t *testing.T) {
	families, err := NewRegistry().Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_ObserveEvent(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveEvent("match.confirmed")
	m.ObserveEvent("match.confirmed")
	m.ObserveEvent("match.released")

	assert.InDelta(t, 2, testutil.ToFloat64(m.EventsReceived.WithLabelValues("match.confirmed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsReceived.WithLabelValues("match.released")), 0)
}
