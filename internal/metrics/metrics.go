package metrics

import (
	"errors"

	"volteryde-gate/internal/session"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	GateDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_decisions_total",
			Help: "Total number of gate decisions by outcome",
		},
		[]string{"app", "decision"},
	)

	CredentialRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_credential_rejections_total",
			Help: "Total number of session credentials that led to a login redirect",
		},
		[]string{"app", "reason"},
	)

	UpstreamErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_upstream_errors_total",
			Help: "Total number of failed requests to the upstream application",
		},
	)
)

func init() {
	prometheus.MustRegister(version.NewCollector(Namespace))
}

// RejectionReason maps a credential error to its metric label.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, session.ErrMissingCredential):
		return RejectionMissing
	case errors.Is(err, session.ErrExpiredCredential):
		return RejectionExpired
	case errors.Is(err, session.ErrMalformedCredential):
		return RejectionMalformed
	default:
		return RejectionUnknown
	}
}
