package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_RecordsInstruments(t *testing.T) {
	m := metrics.New()

	m.ObserveHTTPRequest(http.MethodGet, "/orders/:id", http.StatusOK, 30*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/orders/:id", http.StatusOK, 10*time.Millisecond)
	m.RecordTransition("cancel", "paid", "cancelled")
	m.RecordNotificationFailure("order.shipped")

	body := scrape(t, m)

	assert.Contains(t, body, `fulfillment_http_requests_total{method="GET",path="/orders/:id",status="200"} 2`)
	assert.Contains(t, body, `fulfillment_http_request_duration_seconds_count{method="GET",path="/orders/:id",status="200"} 2`)
	assert.Contains(t, body, `fulfillment_order_transitions_total{action="cancel",from="paid",to="cancelled"} 1`)
	assert.Contains(t, body, `fulfillment_notification_failures_total{kind="order.shipped"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	first := metrics.New()
	second := metrics.New()

	first.RecordTransition("override", "paid", "cancelled")

	assert.NotContains(t, scrape(t, second), "fulfillment_order_transitions_total{")
}
