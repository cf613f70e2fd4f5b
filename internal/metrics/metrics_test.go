package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.Bang(SourceAudio)
	m.Bang(SourceAudio)
	m.Bang(SourceManual)
	m.BangOutcome("recorded", 2*time.Second)
	m.BangOutcome("ignored", 0)
	m.RoundStarted()
	m.SessionCompleted()
	m.Detector(0.0275, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bangs.WithLabelValues(SourceAudio)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bangs.WithLabelValues(SourceManual)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bangOutcomes.WithLabelValues("ignored")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.captureDuration))
	assert.Equal(t, 0.0275, testutil.ToFloat64(m.threshold))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.readErrors))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "bowcinema_sessions_completed_total 1"))
}

func TestNew_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
