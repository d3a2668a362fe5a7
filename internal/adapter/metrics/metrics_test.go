package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewOutcomeRecorder(reg)

	outcomes := []domain.QueryOutcome{
		{Region: domain.RegionNewCollection, Outcome: domain.OutcomeLive, Count: 3, Duration: time.Millisecond},
		{Region: domain.RegionNewCollection, Outcome: domain.OutcomeLive, Count: 3, Duration: time.Millisecond},
		{Region: domain.RegionProducts, Outcome: domain.OutcomeFailed, Duration: time.Second},
	}
	for _, o := range outcomes {
		require.NoError(t, r.RecordOutcome(t.Context(), o))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		r.outcomes.WithLabelValues(domain.RegionNewCollection, string(domain.OutcomeLive)),
	))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		r.outcomes.WithLabelValues(domain.RegionProducts, string(domain.OutcomeFailed)),
	))
	assert.Equal(t, 0.0, testutil.ToFloat64(
		r.outcomes.WithLabelValues(domain.RegionProducts, string(domain.OutcomeEmpty)),
	))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
}

func TestOutcomeRecorderHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewOutcomeRecorder(reg)
	require.NoError(t, r.RecordOutcome(t.Context(), domain.QueryOutcome{
		Region: domain.RegionContact, Outcome: domain.OutcomeEmpty,
	}))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`storefront_catalog_query_outcomes_total{outcome="empty",region="contact"} 1`)
}

func TestOutcomeRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewOutcomeRecorder(reg)
	assert.Panics(t, func() { NewOutcomeRecorder(reg) })
}
