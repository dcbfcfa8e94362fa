// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "landregistry"

//nolint:gochecknoglobals
var (
	// HTTPRequests counts served requests by route pattern, method and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests served.",
	}, []string{"route", "method", "status"})

	// HTTPDuration observes request latency by route pattern and method.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"route", "method"})

	// Logins counts authentication attempts by result.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Login attempts by result.",
	}, []string{"result"})

	// RequestsCreated counts filed workflow requests by type.
	RequestsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Workflow requests filed.",
	}, []string{"type"})

	// RequestDecisions counts requests reaching a final status.
	RequestDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_decisions_total",
		Help:      "Workflow requests approved, rejected or cancelled.",
	}, []string{"status"})

	// DocumentsVerified counts document verifications.
	DocumentsVerified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_verified_total",
		Help:      "Documents verified by land officers.",
	})

	// DocumentsArchived counts documents archived by the expiry sweep.
	DocumentsArchived = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_archived_total",
		Help:      "Expired documents archived by the periodic sweep.",
	})

	// MailJobs counts mail job outcomes: sent, retry or cancelled.
	MailJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_jobs_total",
		Help:      "Mail job outcomes.",
	}, []string{"outcome"})
)
