package metrics

import (
	"context"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

var _ port.OutcomeRecorder = (*OutcomeRecorder)(nil)

// An OutcomeRecorder exposes catalog query outcomes as prometheus metrics.
type OutcomeRecorder struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

// NewOutcomeRecorder registers collectors in reg.
// Registering twice in the same registry panics.
func NewOutcomeRecorder(reg *prometheus.Registry) OutcomeRecorder {
	factory := promauto.With(reg)
	return OutcomeRecorder{
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "query_outcomes_total",
				Help:      "Catalog reads by region and outcome",
			},
			[]string{"region", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "query_duration_seconds",
				Help:      "Catalog read duration by region",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"region"},
		),
		gatherer: reg,
	}
}

func (r OutcomeRecorder) RecordOutcome(
	ctx context.Context, v domain.QueryOutcome,
) error {
	r.outcomes.WithLabelValues(v.Region, string(v.Outcome)).Inc()
	r.duration.WithLabelValues(v.Region).Observe(v.Duration.Seconds())
	return nil
}

// Handler serves the registry the recorder was created with.
func (r OutcomeRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
