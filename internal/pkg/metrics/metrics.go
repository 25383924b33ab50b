// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messdelivery_http_requests_total",
		Help: "Total number of HTTP requests by route and status code.",
	},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "messdelivery_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route"},
	)

	DeliveriesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messdelivery_deliveries_created_total",
		Help: "Deliveries created, split by assignment mode (assigned or pool).",
	},
		[]string{"mode"},
	)

	PoolClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messdelivery_pool_claims_total",
		Help: "Public pool acceptance attempts by outcome (won, lost).",
	},
		[]string{"outcome"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messdelivery_status_transitions_total",
		Help: "Successful delivery status transitions by target status.",
	},
		[]string{"status"},
	)

	OutboxPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messdelivery_outbox_published_total",
		Help: "Outbox messages relayed to the broker and notification table.",
	})

	OutboxFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messdelivery_outbox_failures_total",
		Help: "Outbox messages whose relay attempt failed.",
	})
)
