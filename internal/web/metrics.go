package web

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SharmiliRS/money-manager-frontend/internal/cache"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

// metrics holds the gateway's Prometheus collectors on a private
// registry so tests can build servers independently.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	upstreamErrors  prometheus.Counter
	staleDiscards   prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "HTTP requests handled by the gateway.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		upstreamErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gateway_upstream_errors_total",
			Help: "Failed calls to the remote backend.",
		}),
		staleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gateway_stale_fetches_discarded_total",
			Help: "List fetches discarded because a newer fetch committed first.",
		}),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.upstreamErrors, m.staleDiscards)
	return m
}

func (m *metrics) observeRequest(method, path string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// observeCache exposes the list cache counters as gauges read at
// scrape time.
func (m *metrics) observeCache(c *cache.LRU[[]core.Transaction]) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "gateway_list_cache_entries",
			Help: "Entries currently in the transaction list cache.",
		}, func() float64 { return float64(c.Size()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "gateway_list_cache_hits_total",
			Help: "List cache hits.",
		}, func() float64 { return float64(c.Stats().Hits) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "gateway_list_cache_misses_total",
			Help: "List cache misses.",
		}, func() float64 { return float64(c.Stats().Misses) }),
	)
}
