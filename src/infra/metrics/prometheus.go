package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsManager agrupa as métricas da API num registry próprio.
type MetricsManager struct {
	Registry  *prometheus.Registry
	namespace string

	RequestsTotal   *prometheus.CounterVec
	RequestLatency  *prometheus.HistogramVec
	LoginFailures   prometheus.Counter
	MessagesSent    prometheus.Counter
	LeadsSubmitted  prometheus.Counter
	PropertyChanges *prometheus.CounterVec
}

func NewMetricsManager(namespace string) *MetricsManager {
	registry := prometheus.NewRegistry()

	m := &MetricsManager{
		Registry:  registry,
		namespace: namespace,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		LoginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_failures_total",
			Help:      "Total number of rejected logins.",
		}),
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Total number of contact messages received.",
		}),
		LeadsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_submitted_total",
			Help:      "Total number of buy/sell leads submitted.",
		}),
		PropertyChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "property_changes_total",
			Help:      "Total number of property writes by operation.",
		}, []string{"operation"}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestLatency,
		m.LoginFailures,
		m.MessagesSent,
		m.LeadsSubmitted,
		m.PropertyChanges,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// TrackActiveClients expõe quantos clientes HTTP estão em memória.
func (m *MetricsManager) TrackActiveClients(count func() int) {
	m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "active_clients",
		Help:      "Number of HTTP clients with session state held in memory.",
	}, func() float64 {
		return float64(count())
	}))
}

func (m *MetricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
