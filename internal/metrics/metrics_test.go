package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveStoreEvents(t *testing.T) {
	m := New()
	s := checklist.NewStore(checklist.WithListener(m.Observe))

	s.Load(checklist.Lists{Missing: []checklist.Item{1, 2}})
	require.NoError(t, s.ApplyFoundBatch([]checklist.Item{2, 8, 9}))
	require.NoError(t, s.AddDoubles([]checklist.Item{1}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("load")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("found-batch")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.conflicts.WithLabelValues("missing-removal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts.WithLabelValues("double-insertion")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	sessions := 3
	m.TrackSessions(func() int { return sessions })
	m.ObserveRequest("GET", "/healthz", 200, 5*time.Millisecond)
	m.RateLimited()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cardswap_sessions_active 3")
	assert.Contains(t, string(body), `cardswap_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
	assert.Contains(t, string(body), "cardswap_http_rate_limited_total 1")
}
