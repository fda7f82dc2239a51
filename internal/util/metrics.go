package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Total number of successful order status transitions",
	}, []string{"from", "to", "role"})

	OrderTransitionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_rejected_total",
		Help: "Total number of rejected order status transitions",
	}, []string{"reason"})

	OrderTransitionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_transition_latency_seconds",
		Help:    "Latency of order status transition operations",
		Buckets: prometheus.DefBuckets,
	})

	OrdersDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_delivered_total",
		Help: "Total number of orders delivered",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_cancelled_total",
		Help: "Total number of orders cancelled",
	})

	EarningsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "earnings_entries_recorded_total",
		Help: "Total number of earnings ledger entries recorded",
	})

	CatalogQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_queries_total",
		Help: "Total number of catalog listing queries",
	}, []string{"source"})

	CatalogCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_hits_total",
		Help: "Total number of catalog cache hits",
	})

	CatalogCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_misses_total",
		Help: "Total number of catalog cache misses",
	})

	CatalogFilterLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_filter_latency_seconds",
		Help:    "Latency of the catalog filter pipeline",
		Buckets: prometheus.DefBuckets,
	})

	SessionLookupsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "session_lookups_failed_total",
		Help: "Total number of failed session token lookups",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
