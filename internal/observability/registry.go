package observability

import "time"

// MetricsRegistry records planner metrics. Components receive it by
// injection instead of touching the Prometheus globals directly.
type MetricsRegistry interface {
	// HTTP request metrics
	IncrementRequests(route, method, status string)
	RecordRequestLatency(route, method string, duration time.Duration)

	// Scheduling metrics
	IncrementCommand(command, outcome string)
	IncrementViolation(violationType, severity string)
	SetPlacedAssignments(n int)

	// Settings metrics
	IncrementSettingsReload(outcome string)
}

// PrometheusRegistry implements MetricsRegistry on the package level
// collectors.
type PrometheusRegistry struct{}

func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

func (r *PrometheusRegistry) IncrementRequests(route, method, status string) {
	RequestCount.WithLabelValues(route, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(route, method string, duration time.Duration) {
	RequestLatency.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (r *PrometheusRegistry) IncrementCommand(command, outcome string) {
	CommandCount.WithLabelValues(command, outcome).Inc()
}

func (r *PrometheusRegistry) IncrementViolation(violationType, severity string) {
	ViolationCount.WithLabelValues(violationType, severity).Inc()
}

func (r *PrometheusRegistry) SetPlacedAssignments(n int) {
	PlacedAssignments.Set(float64(n))
}

func (r *PrometheusRegistry) IncrementSettingsReload(outcome string) {
	SettingsReloads.WithLabelValues(outcome).Inc()
}

// NoOpRegistry discards every measurement.
type NoOpRegistry struct{}

func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

func (r *NoOpRegistry) IncrementRequests(route, method, status string)                    {}
func (r *NoOpRegistry) RecordRequestLatency(route, method string, duration time.Duration) {}
func (r *NoOpRegistry) IncrementCommand(command, outcome string)                          {}
func (r *NoOpRegistry) IncrementViolation(violationType, severity string)                 {}
func (r *NoOpRegistry) SetPlacedAssignments(n int)                                        {}
func (r *NoOpRegistry) IncrementSettingsReload(outcome string)                            {}
