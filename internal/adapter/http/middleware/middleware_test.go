package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/infrastructure/metrics"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestRequestLog_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf, "info")
	t.Cleanup(func() { logger.SetLevel("info") })

	handler := RequestLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/videos/abc/manifest", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "GET /videos/abc/manifest 418 5B")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestStatusRecorder_FlushPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	var w http.ResponseWriter = sr
	f, ok := w.(http.Flusher)
	require.True(t, ok)

	_, _ = w.Write([]byte("data: x\n\n"))
	f.Flush()

	assert.True(t, rec.Flushed)
	assert.Equal(t, http.StatusOK, sr.status)
}

func TestMetrics_LabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /videos/{id}/manifest", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := Metrics(mux)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "GET /videos/{id}/manifest", "404")
	before := counterValue(t, counter)

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/videos/"+id+"/manifest", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, before+3, counterValue(t, counter))
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	handler := Metrics(http.NewServeMux())
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := counterValue(t, counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, before+1, counterValue(t, counter))
}
