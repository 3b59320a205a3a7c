package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PSM-BookingService/pkg/metrics"
)

func TestMetricsMiddleware_ObservesRequest(t *testing.T) {
	collector := metrics.New("psm-test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector, "psm-test"))
	r.HandleFunc("/api/v1/suppliers/{supplierId}/schedule", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/7/schedule", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// The scrape must carry the route template as path and the recorded
	// response code.
	scrape := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := scrape.Body.String()

	assert.True(t, strings.Contains(body,
		`http_requests_total{method="GET",path="/api/v1/suppliers/{supplierId}/schedule",service="psm-test",status="404"} 1`),
		"request was not observed with route template and status:\n%s", body)
	assert.Contains(t, body,
		`http_request_duration_seconds_count{method="GET",path="/api/v1/suppliers/{supplierId}/schedule",service="psm-test"} 1`)
}
