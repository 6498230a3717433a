// Package metrics exposes Prometheus collectors for backend calls and
// session bookkeeping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	gatewayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "robotshop_web",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of backend requests issued, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	gatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "robotshop_web",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"operation"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "robotshop_web",
			Subsystem: "session",
			Name:      "active",
			Help:      "Number of browser sessions currently held in memory.",
		},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "robotshop_web",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of browser-facing API requests, by route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	sessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "robotshop_web",
			Subsystem: "session",
			Name:      "events_total",
			Help:      "Session state changes, by kind.",
		},
		[]string{"kind"},
	)

	cartAdds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "robotshop_web",
			Subsystem: "cart",
			Name:      "items_added_total",
			Help:      "Units requested through add-to-cart.",
		},
	)
)

func init() {
	Registry.MustRegister(gatewayRequests, gatewayDuration, httpDuration, activeSessions, sessionEvents, cartAdds)
}

// ObserveGatewayRequest records one backend call. outcome is "ok",
// "network_error" or "decode_error".
func ObserveGatewayRequest(operation, outcome string, d time.Duration) {
	gatewayRequests.WithLabelValues(operation, outcome).Inc()
	gatewayDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveHTTPRequest records one inbound request. route is the matched route
// template, not the raw path.
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

func ObserveSessionEvent(kind string) {
	sessionEvents.WithLabelValues(kind).Inc()
}

func AddCartUnits(qty int) {
	cartAdds.Add(float64(qty))
}

// Handler serves the collectors in Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
