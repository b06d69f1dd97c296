// Package observability holds the prometheus collectors for the roster service.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roster_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Successful signups per activity.",
	}, []string{"activity"})

	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Successful unregistrations per activity.",
	}, []string{"activity"})

	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "roster_service",
		Subsystem: "registry",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(requestDuration, signupsTotal, unregistrationsTotal, rosterSize)
}

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, route string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// RecordSignup updates mutation counters after a successful signup.
func RecordSignup(activity string, size int) {
	signupsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// RecordUnregister updates mutation counters after a successful unregistration.
func RecordUnregister(activity string, size int) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// SetRosterSize primes the roster gauge, used for seed data at startup.
func SetRosterSize(activity string, size int) {
	rosterSize.WithLabelValues(activity).Set(float64(size))
}
