// Package metrics expone los colectores Prometheus del API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTPMetrics colectores de tráfico HTTP registrados en un registry propio.
type HTTPMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	skuOps   *prometheus.CounterVec
}

// NewHTTPMetrics crea los colectores sobre un registry nuevo con namespace.
// Incluye los colectores de proceso y runtime de Go.
func NewHTTPMetrics(namespace string) *HTTPMetrics {
	reg := prometheus.NewRegistry()
	m := &HTTPMetrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		skuOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sku_operations_total",
			Help:      "Operaciones de catálogo por tipo y resultado.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(
		m.requests,
		m.duration,
		m.skuOps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry devuelve el registry para exponerlo en /metrics.
func (m *HTTPMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest registra una petición atendida.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSKUOperation cuenta una operación de catálogo (create, update, delete) y su resultado.
func (m *HTTPMetrics) ObserveSKUOperation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.skuOps.WithLabelValues(operation, outcome).Inc()
}

// RequestCount devuelve el contador para una combinación de etiquetas (tests).
func (m *HTTPMetrics) RequestCount(method, route string, status int) prometheus.Counter {
	return m.requests.WithLabelValues(method, route, strconv.Itoa(status))
}

// SKUOperationCount devuelve el contador de una operación de catálogo (tests).
func (m *HTTPMetrics) SKUOperationCount(operation, outcome string) prometheus.Counter {
	return m.skuOps.WithLabelValues(operation, outcome)
}
