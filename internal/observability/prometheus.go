package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "redeem_server",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "redeem_server",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "redeem_server",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	redemptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "redeem_server",
			Subsystem: "merch",
			Name:      "redemptions_total",
			Help:      "Redemption attempts by outcome.",
		},
		[]string{"outcome"},
	)

	creditsRedeemed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "redeem_server",
			Subsystem: "merch",
			Name:      "credits_redeemed_total",
			Help:      "Credits deducted by settled redemptions.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		redemptions,
		creditsRedeemed,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// MetricsHandler exposes the registered collectors in the Prometheus text format.
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// PrometheusMiddleware records request counts and latencies per route template.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordRedemption counts a redemption attempt. credits is only added to the
// redeemed total for fresh settlements.
func RecordRedemption(outcome string, credits int) {
	redemptions.WithLabelValues(outcome).Inc()
	if outcome == RedemptionOutcomeSettled && credits > 0 {
		creditsRedeemed.Add(float64(credits))
	}
}

// Redemption outcome labels.
const (
	RedemptionOutcomeSettled  = "settled"
	RedemptionOutcomeReplayed = "replayed"
	RedemptionOutcomeRejected = "rejected"
	RedemptionOutcomeFailed   = "failed"
)
