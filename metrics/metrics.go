package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
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
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Cache metrics
	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_cache_hits_total",
			Help: "Total number of cache hits by key family",
		},
		[]string{"family"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_cache_misses_total",
			Help: "Total number of cache misses by key family",
		},
		[]string{"family"},
	)

	// Notification metrics
	emailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_emails_sent_total",
			Help: "Total number of notification emails by kind and result",
		},
		[]string{"kind", "result"},
	)

	// Domain metrics
	inquiriesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_inquiries_created_total",
			Help: "Total number of contact inquiries created",
		},
	)
)

// Middleware records request counts and latency per route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Route pattern, not raw URL, to keep label cardinality bounded.
		endpoint := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the Prometheus registry as a fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

func RecordCacheHit(family string) {
	cacheHitsTotal.WithLabelValues(family).Inc()
}

func RecordCacheMiss(family string) {
	cacheMissesTotal.WithLabelValues(family).Inc()
}

func RecordEmail(kind string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	emailsSentTotal.WithLabelValues(kind, result).Inc()
}

func RecordInquiryCreated() {
	inquiriesCreatedTotal.Inc()
}
