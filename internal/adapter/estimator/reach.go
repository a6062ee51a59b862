// Package estimator projects what a send would achieve from catalog
// metrics alone.
package estimator

import (
	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

// Deterministic estimates reach without randomness:
//
//	delivered = size × (1 − bounce rate)
//	opens     = delivered × template open rate
//	clicks    = delivered × audience click-through rate
type Deterministic struct{}

var _ port.ReachEstimator = Deterministic{}

func New() Deterministic { return Deterministic{} }

func (Deterministic) Estimate(a domain.Audience, t domain.Template) port.Reach {
	delivered := float64(a.Size) * (1 - a.Bounce())
	return port.Reach{
		Recipients: a.Size,
		Delivered:  delivered,
		Opens:      delivered * t.OpenRate(),
		Clicks:     delivered * a.CTR(),
	}
}
