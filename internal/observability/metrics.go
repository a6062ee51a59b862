package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total API requests per route, method and status code
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_requests_total",
			Help: "Total API requests received",
		},
		[]string{"route", "method", "status"},
	)

	// request latency in seconds per route/method
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// scheduling commands labelled by command and outcome
	CommandCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_commands_total",
			Help: "Total scheduling commands executed",
		},
		[]string{"command", "outcome"},
	)

	// violations reported by the constraint checker
	ViolationCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_violations_total",
			Help: "Total constraint violations reported",
		},
		[]string{"type", "severity"},
	)

	// assignments currently on the grid
	PlacedAssignments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "planner_assignments",
			Help: "Assignments currently placed on the grid",
		},
	)

	// settings reloads labelled by outcome
	SettingsReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_settings_reloads_total",
			Help: "Total policy reloads from the settings store",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestCount,
		RequestLatency,
		CommandCount,
		ViolationCount,
		PlacedAssignments,
		SettingsReloads,
	)
}
