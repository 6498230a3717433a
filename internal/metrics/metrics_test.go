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

func TestObserveSessionEvent(t *testing.T) {
	before := testutil.ToFloat64(sessionEvents.WithLabelValues("cart"))

	ObserveSessionEvent("cart")
	ObserveSessionEvent("cart")
	ObserveSessionEvent("login")

	assert.Equal(t, before+2, testutil.ToFloat64(sessionEvents.WithLabelValues("cart")))
}

func TestGatewayAndSessionCollectors(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequests.WithLabelValues("pay", "ok"))
	ObserveGatewayRequest("pay", "ok", 20*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(gatewayRequests.WithLabelValues("pay", "ok")))

	SetActiveSessions(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(activeSessions))
}

func TestHandlerExposesRegistry(t *testing.T) {
	ObserveSessionEvent("identity")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "robotshop_web_session_events_total")
}
