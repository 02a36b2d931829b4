package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRequests(t *testing.T) {
	m := NewMetrics("dompet")

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts", nil))
	require.Equal(t, http.StatusTeapot, w.Code)

	m.TokensIssued.WithLabelValues("app").Inc()
	m.SyncRuns.WithLabelValues("ok").Inc()

	w = httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "dompet_request_latency_seconds"))
	assert.True(t, strings.Contains(body, `dompet_tokens_issued_total{kind="app"} 1`))
	assert.True(t, strings.Contains(body, `dompet_sync_runs_total{outcome="ok"} 1`))
}
