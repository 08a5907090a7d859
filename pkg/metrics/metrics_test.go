package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProbe(t *testing.T) {
	m := NewMetrics()

	m.RecordProbe(true)
	m.RecordProbe(false)
	m.RecordProbe(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProbeCount.WithLabelValues(ProbeResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProbeCount.WithLabelValues(ProbeResultError)))
}

func TestRecordRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest(http.MethodGet, "/api/db/health", http.StatusInternalServerError, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCount.WithLabelValues(http.MethodGet, "/api/db/health", "500")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordProbe(true)
		m.RecordRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.RecordProbe(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `db_health_probes_total{result="ok"} 1`)
}
