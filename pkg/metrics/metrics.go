// Package metrics expone los contadores Prometheus de la aplicación.
//
// Se registran en un Registry propio (no el global) para que los tests
// puedan crear instancias aisladas sin colisiones de registro.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores de la aplicación.
type Metrics struct {
	registry *prometheus.Registry

	// StoreOps cuenta operaciones contra el document store por colección,
	// operación (list, create, update, delete) y resultado (ok, error).
	StoreOps *prometheus.CounterVec

	// HTTPRequests cuenta peticiones HTTP por ruta y código de estado.
	HTTPRequests *prometheus.CounterVec
}

// New construye y registra los colectores.
func New(appName string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		StoreOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: appName,
			Name:      "store_operations_total",
			Help:      "Operaciones contra el document store.",
		}, []string{"collection", "op", "result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: appName,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"path", "status"}),
	}
	reg.MustRegister(m.StoreOps, m.HTTPRequests)
	return m
}

// ObserveStoreOp registra una operación del store. result: "ok" | "error".
func (m *Metrics) ObserveStoreOp(collection, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreOps.WithLabelValues(collection, op, result).Inc()
}

// Handler devuelve el handler HTTP estándar para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
