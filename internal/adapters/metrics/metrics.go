package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "unicredit"

// Metrics records ledger and http activity.
type Metrics struct {
	gatherer  prometheus.Gatherer
	transfers *prometheus.CounterVec
	credits   *prometheus.CounterVec
	failures  *prometheus.CounterVec
	requests  *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_transfers_total",
			Help:      "Committed ledger operations.",
		}, []string{"kind"}),
		credits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_credits_moved_total",
			Help:      "Credits moved by committed ledger operations.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_failures_total",
			Help:      "Rejected or aborted ledger operations.",
		}, []string{"kind", "reason"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of http requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.transfers, m.credits, m.failures, m.requests)

	return m
}

func (m *Metrics) ObserveTransfer(kind model.TransactionKind, amount int64) {
	if m == nil {
		return
	}
	m.transfers.WithLabelValues(normalizeLabel(string(kind))).Inc()
	m.credits.WithLabelValues(normalizeLabel(string(kind))).Add(float64(amount))
}

func (m *Metrics) ObserveFailure(kind model.TransactionKind, reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(string(kind)), normalizeLabel(reason)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
