// Package metrics expone métricas Prometheus del servidor HTTP:
// contador de peticiones y histograma de duración, etiquetados por
// método, ruta y código de estado.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics agrupa los colectores del servicio.
type HTTPMetrics struct {
	serviceName string
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewHTTPMetrics construye y registra los colectores para el servicio indicado.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{
		serviceName: serviceName,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de peticiones HTTP",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
	}
	prometheus.MustRegister(m.requests, m.duration)
	return m
}

// Middleware registra contador y duración de cada petición.
// Usa c.Route().Path para no explotar la cardinalidad con parámetros de ruta.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		method := c.Method()
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		m.requests.WithLabelValues(m.serviceName, method, path, statusStr).Inc()
		m.duration.WithLabelValues(m.serviceName, method, path, statusStr).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler expone el endpoint /metrics en formato Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
