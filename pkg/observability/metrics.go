package observability

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/helmsman/pkg/domain"
)

// Metrics collects per-turn counters and histograms.
type Metrics struct {
	registry     *prometheus.Registry
	turns        *prometheus.CounterVec
	frameErrors  *prometheus.CounterVec
	frameBytes   prometheus.Histogram
	turnDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them in a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helmsman_turns_total",
				Help: "Total number of turns by outcome",
			},
			[]string{"outcome"},
		),
		frameErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helmsman_frame_errors_total",
				Help: "Total number of failed turns by error kind",
			},
			[]string{"kind"},
		),
		frameBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "helmsman_frame_bytes",
			Help:    "Size of incoming frames in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}),
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "helmsman_turn_duration_seconds",
			Help:    "Time from reading a frame to writing the response",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.turns, m.frameErrors, m.frameBytes, m.turnDuration)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns turn hooks that feed the collectors.
func (m *Metrics) Hooks() domain.TurnHooks {
	return domain.TurnHooks{
		OnTurnStart: func(ctx context.Context, e *domain.TurnEvent) {
			m.frameBytes.Observe(float64(e.FrameBytes))
		},
		OnTurnEnd: func(ctx context.Context, e *domain.TurnEvent) {
			m.turns.WithLabelValues(string(e.Outcome)).Inc()
			m.turnDuration.Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.frameErrors.WithLabelValues(ErrorKind(e.Err)).Inc()
			}
		},
	}
}

// WriteFile writes the current metric values in the text exposition format.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// ErrorKind classifies a turn error for metric labels.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrDecode):
		return "decode"
	case errors.Is(err, domain.ErrParse):
		return "parse"
	case errors.Is(err, domain.ErrSchema):
		return "schema"
	default:
		return "other"
	}
}
