package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentAuthMiddleware_CountsOutcomes(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	handler := m.InstrumentAuthMiddleware(apiKeyMiddleware("secret"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	send := func(key string) {
		req := httptest.NewRequest("GET", "/api/v1/symbols", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	send("secret")
	send("secret")
	send("wrong")
	send("") // missing key is not an auth attempt

	assert.Equal(t, 2.0, testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusError)))
}
