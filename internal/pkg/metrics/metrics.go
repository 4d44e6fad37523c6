package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hris_attendance"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"method", "route", "status"},
	)
	// Leave workflow outcomes by action (approve, reject, other) and result
	LeaveTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "leave_transitions_total", Help: "Leave status update attempts by action and outcome"},
		[]string{"action", "outcome"},
	)
	LeaveSubmissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "leave_submissions_total", Help: "Leave requests created"},
	)
	CacheHitTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_hit_total", Help: "Cache hits by component"},
		[]string{"component"},
	)
	CacheMissTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_miss_total", Help: "Cache misses by component"},
		[]string{"component"},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, RequestsTotal, LeaveTransitionsTotal, LeaveSubmissionsTotal, CacheHitTotal, CacheMissTotal)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
