package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Business metrics
	resourceUpserts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resource_upserts_total",
			Help: "Resource record writes by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	authAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Login and registration attempts by role and outcome",
		},
		[]string{"role", "action", "outcome"},
	)

	payments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Payment intents created and confirmed, by status",
		},
		[]string{"status"},
	)

	communityPosts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_posts_total",
			Help: "Community requests and replies posted",
		},
		[]string{"type"},
	)

	chatbotRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_requests_total",
			Help: "Chat-bot proxy calls by outcome",
		},
		[]string{"outcome"},
	)

	chatbotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chatbot_request_duration_seconds",
			Help:    "Chat-bot upstream latency in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	refreshTokensSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "refresh_tokens_swept_total",
			Help: "Expired or revoked refresh tokens deleted by the sweeper",
		},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count, latency and in-flight requests. The
// route template is used as the path label so ids do not explode cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// --- Business metric helpers ---

// RecordResourceUpsert records a resource write attempt
func RecordResourceUpsert(kind, outcome string) {
	resourceUpserts.WithLabelValues(kind, outcome).Inc()
}

// RecordAuthAttempt records a login or registration attempt
func RecordAuthAttempt(role, action, outcome string) {
	authAttempts.WithLabelValues(role, action, outcome).Inc()
}

// RecordPayment records a payment state change
func RecordPayment(status string) {
	payments.WithLabelValues(status).Inc()
}

// RecordCommunityPost records a request or reply
func RecordCommunityPost(postType string) {
	communityPosts.WithLabelValues(postType).Inc()
}

// RecordChatbotRequest records an upstream chat-bot call
func RecordChatbotRequest(outcome string, duration time.Duration) {
	chatbotRequests.WithLabelValues(outcome).Inc()
	chatbotDuration.Observe(duration.Seconds())
}

// RecordTokensSwept adds n to the sweeper counter
func RecordTokensSwept(n int64) {
	refreshTokensSwept.Add(float64(n))
}
