package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"multichat/internal/entities"
)

const metricsNamespace = "multichat"

// Metrics wraps the Prometheus collectors of the chat service on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RepliesTotal     *prometheus.CounterVec
	RateLimitedTotal *prometheus.CounterVec
}

// NewMetrics registers the collectors. activeSessions feeds the session gauge
// and may be nil.
func NewMetrics(activeSessions func() int) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RepliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "replies_total",
			Help:      "Assistant replies by platform and matched category",
		}, []string{"platform", "category"}),
		RateLimitedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by a rate limiter",
		}, []string{"route"}),
	}
	reg.MustRegister(m.RepliesTotal, m.RateLimitedTotal)

	if activeSessions != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held in conversation memory",
		}, func() float64 { return float64(activeSessions()) }))
	}

	return m
}

func (m *Metrics) ObserveReply(platform entities.Platform, category string) {
	m.RepliesTotal.WithLabelValues(string(platform), category).Inc()
}

func (m *Metrics) ObserveRateLimited(route string) {
	m.RateLimitedTotal.WithLabelValues(route).Inc()
}

// Handler serves the exposition format for this registry only.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
