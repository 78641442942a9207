package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for upstream news calls.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeEmpty = "empty"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	newsRequests *prometheus.CounterVec
	datasetRows  *prometheus.GaugeVec
	loadDuration prometheus.Gauge
}

// New registers the service collectors plus the Go runtime and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medidash",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medidash",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		newsRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medidash",
			Name:      "news_upstream_requests_total",
			Help:      "NewsAPI calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		datasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "medidash",
			Name:      "dataset_rows",
			Help:      "Rows loaded per dataset.",
		}, []string{"dataset"}),
		loadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "medidash",
			Name:      "dataset_load_seconds",
			Help:      "Time spent loading all datasets at start-up.",
		}),
	}
	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.newsRequests,
		m.datasetRows,
		m.loadDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(route, method, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveNews counts one upstream news call.
func (m *Metrics) ObserveNews(operation, outcome string) {
	m.newsRequests.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) SetDatasetRows(dataset string, rows int) {
	m.datasetRows.WithLabelValues(dataset).Set(float64(rows))
}

func (m *Metrics) SetLoadDuration(d time.Duration) {
	m.loadDuration.Set(d.Seconds())
}
