package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-planner/internal/core/domain"
)

func TestEstimate(t *testing.T) {
	bounce, ctr, open := 0.05, 0.04, 0.3
	a := domain.Audience{ID: "a", Size: 10000, BounceRate: &bounce, ClickThroughRate: &ctr}
	tpl := domain.Template{ID: "t", Metrics: domain.TemplateMetrics{OpenRate: &open}}

	r := New().Estimate(a, tpl)
	assert.Equal(t, int64(10000), r.Recipients)
	assert.InDelta(t, 9500, r.Delivered, 1e-9)
	assert.InDelta(t, 2850, r.Opens, 1e-9)
	assert.InDelta(t, 380, r.Clicks, 1e-9)

	// same input, same output
	assert.Equal(t, r, New().Estimate(a, tpl))
}

func TestEstimateDefaults(t *testing.T) {
	r := New().Estimate(domain.Audience{Size: 1000}, domain.Template{})
	assert.InDelta(t, 1000, r.Delivered, 1e-9)
	assert.InDelta(t, 1000*domain.DefaultOpenRate, r.Opens, 1e-9)
	assert.InDelta(t, 1000*domain.DefaultClickThroughRate, r.Clicks, 1e-9)
}
