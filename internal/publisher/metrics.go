package publisher

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cadencehq/cadence/internal/entities"
)

type instrumented struct {
	next Publisher

	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// WithMetrics wraps p with prometheus counters of publishing attempts.
func WithMetrics(p Publisher, reg prometheus.Registerer) Publisher {
	m := instrumented{
		next: p,
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadence_publish_total",
				Help: "Total number of publishing attempts",
			},
			[]string{"platform", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cadence_publish_duration_seconds",
				Help:    "Publishing duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"platform"},
		),
	}

	reg.MustRegister(m.total, m.duration)

	return m
}

func (m instrumented) Publish(ctx context.Context, c *entities.ScheduledContent) (*entities.PublishResult, error) {
	start := time.Now()

	res, err := m.next.Publish(ctx, c)

	m.duration.WithLabelValues(string(c.Platform)).Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		m.total.WithLabelValues(string(c.Platform), "error").Inc()
	case res.Success:
		m.total.WithLabelValues(string(c.Platform), "success").Inc()
	default:
		m.total.WithLabelValues(string(c.Platform), "failure").Inc()
	}

	return res, err
}
