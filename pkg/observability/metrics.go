package observability

import (
	"context"

	"github.com/aretw0/dectab/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by the lifecycle hooks.
type Metrics struct {
	Recognitions *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	Rules        prometheus.Histogram
	InputBytes   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Recognitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dectab_recognitions_total",
				Help: "Total number of recognition attempts by outcome and orientation",
			},
			[]string{"outcome", "orientation"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dectab_recognition_duration_seconds",
				Help:    "Duration of recognitions",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"outcome"},
		),
		Rules: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dectab_table_rules",
			Help:    "Number of rules in recognized tables",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		InputBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dectab_input_bytes",
			Help:    "Size of the submitted table text",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
	reg.MustRegister(m.Recognitions, m.Duration, m.Rules, m.InputBytes)
	return m
}

// Hooks returns lifecycle hooks that record every recognition.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRecognized: func(_ context.Context, e *domain.RecognitionEvent) {
			m.Recognitions.WithLabelValues(string(domain.EventRecognized), string(e.Orientation)).Inc()
			m.Duration.WithLabelValues(string(domain.EventRecognized)).Observe(e.Duration.Seconds())
			m.Rules.Observe(float64(e.RuleCount))
			m.InputBytes.Observe(float64(e.InputSize))
		},
		OnRejected: func(_ context.Context, e *domain.RecognitionEvent) {
			m.Recognitions.WithLabelValues(string(domain.EventRejected), "").Inc()
			m.Duration.WithLabelValues(string(domain.EventRejected)).Observe(e.Duration.Seconds())
			m.InputBytes.Observe(float64(e.InputSize))
		},
	}
}

// ChainHooks calls the hooks in order. Nil callbacks are skipped.
func ChainHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRecognized: func(ctx context.Context, e *domain.RecognitionEvent) {
			for _, h := range hooks {
				if h.OnRecognized != nil {
					h.OnRecognized(ctx, e)
				}
			}
		},
		OnRejected: func(ctx context.Context, e *domain.RecognitionEvent) {
			for _, h := range hooks {
				if h.OnRejected != nil {
					h.OnRejected(ctx, e)
				}
			}
		},
	}
}
