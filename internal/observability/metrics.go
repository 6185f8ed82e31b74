package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_fiscal_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// UpstreamRequestDuration tracks upstream API call duration per endpoint
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_fiscal_upstream_request_duration_seconds",
			Help: "Duration of upstream API requests in seconds",
		},
		[]string{"endpoint", "outcome"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_fiscal_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// PagerFetches tracks CABYS pager window fetches
	PagerFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_fiscal_pager_fetches_total",
			Help: "Number of CABYS window fetches issued by the pager",
		},
		[]string{"reason"},
	)

	// UpstreamUp reports the last status-poller probe outcome (1 up, 0 down)
	UpstreamUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_fiscal_upstream_up",
			Help: "Whether the last upstream status probe succeeded",
		},
	)

	// UpstreamProbeLatency reports the last successful probe round-trip time
	UpstreamProbeLatency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_fiscal_upstream_probe_latency_seconds",
			Help: "Round-trip latency of the last successful upstream probe",
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_fiscal_active_connections",
			Help: "Number of active connections",
		},
	)
)
