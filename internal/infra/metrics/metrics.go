// Package metrics exposes Prometheus instrumentation for the match lifecycle.
package metrics

import (
	"time"

	"bloodbank/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

// Metrics provides observability for match confirmation, release and candidate computation.
type Metrics struct {
	// Lifecycle outcomes by operation and outcome
	LifecycleOutcome *prometheus.CounterVec

	// Lifecycle latency by operation
	LifecycleLatency *prometheus.HistogramVec

	// Size of computed candidate lists
	CandidateCount prometheus.Histogram

	// Match events received by the worker, by event type
	EventsReceived *prometheus.CounterVec
}

// NewRegistry creates the registry served on /metrics, preloaded with runtime collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LifecycleOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_match_lifecycle_total",
			Help: "Total match lifecycle operations by operation and outcome",
		}, []string{"operation", "outcome"}), // operation: "confirm", "release"

		LifecycleLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bloodbank_match_lifecycle_duration_seconds",
			Help:    "Duration of match lifecycle transactions",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		CandidateCount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bloodbank_match_candidates",
			Help:    "Number of candidate donors returned per candidate query",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),

		EventsReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_match_events_received_total",
			Help: "Total match events received by the event worker",
		}, []string{"type"}),
	}
}

// ObserveConfirm records a confirmation outcome and its duration.
func (m *Metrics) ObserveConfirm(outcome string, elapsed time.Duration) {
	m.observe("confirm", outcome, elapsed)
}

// ObserveRelease records a release outcome and its duration.
func (m *Metrics) ObserveRelease(outcome string, elapsed time.Duration) {
	m.observe("release", outcome, elapsed)
}

// ObserveCandidates records the size of a candidate list.
func (m *Metrics) ObserveCandidates(count int) {
	if m != nil {
		m.CandidateCount.Observe(float64(count))
	}
}

// ObserveEvent records a match event delivered to the worker.
func (m *Metrics) ObserveEvent(eventType string) {
	if m != nil {
		m.EventsReceived.WithLabelValues(eventType).Inc()
	}
}

func (m *Metrics) observe(operation, outcome string, elapsed time.Duration) {
	if m != nil {
		m.LifecycleOutcome.WithLabelValues(operation, outcome).Inc()
		m.LifecycleLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}

// Module provides the registry and match metrics.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) *Metrics { return New(reg) },
		func(m *Metrics) service.MatchMetrics { return m },
	),
)
