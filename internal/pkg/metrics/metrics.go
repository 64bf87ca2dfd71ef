package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safar",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "safar",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "safar",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response size in bytes",
		Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
	}, []string{"method", "path"})

	// Travel engine metrics
	GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safar",
		Subsystem: "travel",
		Name:      "geocode_requests_total",
		Help:      "Total geocoding lookups by outcome",
	}, []string{"status"})

	RouteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safar",
		Subsystem: "travel",
		Name:      "route_requests_total",
		Help:      "Total per-mode route computations by outcome",
	}, []string{"mode", "status"})

	OptionsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safar",
		Subsystem: "travel",
		Name:      "options_computed_total",
		Help:      "Total travel options produced",
	}, []string{"mode"})

	MoodsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safar",
		Subsystem: "mood",
		Name:      "classified_total",
		Help:      "Total mood classifications by category and decision source",
	}, []string{"mood", "source"})

	ItinerariesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safar",
		Subsystem: "itinerary",
		Name:      "generated_total",
		Help:      "Total itinerary generations by outcome",
	}, []string{"status"})

	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "safar",
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Latency of external provider calls",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"provider"})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(len(c.Response().Body())))

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
