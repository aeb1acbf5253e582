package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "conteos"

// requestsTotal cuenta requests HTTP atendidas, por ruta, método y código.
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total de requests HTTP atendidas.",
	},
	[]string{"path", "method", "status"},
)

// requestDuration mide la latencia de cada request.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las requests HTTP.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// MetricsMiddleware registra contadores y latencia por request. Usa la ruta
// registrada (no la URL cruda) para acotar la cardinalidad de labels.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		requestsTotal.WithLabelValues(path, method, strconv.Itoa(c.Response().StatusCode())).Inc()
		requestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone /metrics en formato Prometheus.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
