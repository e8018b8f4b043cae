// Package metrics exposes Prometheus counters for calculator and profile
// traffic.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nutriplan"

var (
	once sync.Once

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Count of successful energy profile calculations by goal.",
		},
		[]string{"goal"},
	)

	rejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculation_rejections_total",
			Help:      "Count of rejected calculation requests by reason.",
		},
		[]string{"reason"},
	)

	profileSaves = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_saves_total",
			Help:      "Count of stored nutrition profiles.",
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_cache_lookups_total",
			Help:      "Count of profile cache lookups by result.",
		},
		[]string{"result"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(calculations, rejections, profileSaves, cacheLookups, httpRequests)
	})
}

// IncCalculation counts a successful calculation for goal.
func IncCalculation(goal string) {
	calculations.WithLabelValues(goal).Inc()
}

// IncRejection counts a rejected request by reason.
func IncRejection(reason string) {
	rejections.WithLabelValues(reason).Inc()
}

// IncProfileSave counts a stored profile.
func IncProfileSave() {
	profileSaves.Inc()
}

// IncCacheLookup records a cache "hit", "miss" or "error".
func IncCacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}

// IncHTTPRequest counts a served request by route and status code.
func IncHTTPRequest(route, code string) {
	httpRequests.WithLabelValues(route, code).Inc()
}
