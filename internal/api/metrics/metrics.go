// Package metrics defines all custom Prometheus metrics for the invoicing
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto; request-level HTTP metrics come from the echoprometheus
// middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invoicing"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users successfully registered.",
	},
)

// InvoicesCreatedTotal counts successfully created invoices.
var InvoicesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_created_total",
		Help:      "Total number of invoices created.",
	},
)

// InvoicesDeletedTotal counts deleted invoices.
var InvoicesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_deleted_total",
		Help:      "Total number of invoices deleted.",
	},
)

// DocumentsRenderedTotal counts document downloads.
// Label:
//   - result: "ok" or "error"
var DocumentsRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_rendered_total",
		Help:      "Total number of invoice document renders, labelled by result.",
	},
	[]string{"result"},
)

// DocumentRenderDuration measures how long a single document render takes,
// from projection assembly to finished bytes.
var DocumentRenderDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "document_render_duration_seconds",
		Help:      "Duration of invoice document rendering.",
		Buckets:   prometheus.DefBuckets,
	},
)
