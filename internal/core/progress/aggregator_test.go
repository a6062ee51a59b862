package progress

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
)

var (
	mon     = domain.NewDate(2024, 1, 1) // Monday
	tue     = domain.NewDate(2024, 1, 2)
	nextMon = domain.NewDate(2024, 1, 8)
	morning = domain.MustAnchorTime(9, 0)
)

func revenueGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.New()
	require.NoError(t, g.Add(domain.SlotKey{Date: mon, Time: morning}, domain.Assignment{
		ID: "a", AudienceSize: 10000, ClickThroughRate: 0.03, RevenuePerMille: 150,
	}))
	require.NoError(t, g.Add(domain.SlotKey{Date: tue, Time: morning}, domain.Assignment{
		ID: "b", AudienceSize: 20000, ClickThroughRate: 0.02, RevenuePerMille: 100,
	}))
	return g
}

func TestTotalRevenue(t *testing.T) {
	g := revenueGrid(t)

	got := TotalRevenue(g, DateRange{From: mon, To: tue})
	assert.True(t, got.Equal(decimal.NewFromInt(85)), "got %s", got)

	onlyMonday := TotalRevenue(g, DateRange{From: mon, To: mon})
	assert.True(t, onlyMonday.Equal(decimal.NewFromInt(45)), "got %s", onlyMonday)
}

func TestTotalClicks(t *testing.T) {
	g := revenueGrid(t)
	assert.InDelta(t, 700.0, TotalClicks(g, DateRange{From: mon, To: tue}), 1e-9)
	assert.Zero(t, TotalClicks(g, DateRange{From: nextMon, To: nextMon}))
}

func TestClickLimitCapsClicksAndRevenue(t *testing.T) {
	limit := int64(100)
	g := grid.New()
	require.NoError(t, g.Add(domain.SlotKey{Date: mon, Time: morning}, domain.Assignment{
		ID: "a", AudienceSize: 10000, ClickThroughRate: 0.03, RevenuePerMille: 150, ClickLimit: &limit,
	}))

	r := DateRange{From: mon, To: mon}
	assert.InDelta(t, 100.0, TotalClicks(g, r), 1e-9)
	assert.True(t, TotalRevenue(g, r).Equal(decimal.NewFromInt(15)))
}

func TestProgressToGoal(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"half way", 50, 200, 25},
		{"capped at 100", 300, 200, 100},
		{"zero target", 10, 0, 0},
		{"negative current", -5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressToGoal(tt.current, tt.target)
			assert.InDelta(t, tt.want, got.Percentage, 1e-9)
			assert.Equal(t, tt.current, got.Current)
			assert.Equal(t, tt.target, got.Target)
		})
	}
}

func TestDailyIncludesEmptyDays(t *testing.T) {
	g := revenueGrid(t)
	days := Daily(g, DateRange{From: mon, To: domain.NewDate(2024, 1, 3)})
	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].Campaigns)
	assert.Equal(t, 1, days[1].Campaigns)
	assert.Equal(t, 0, days[2].Campaigns)
	assert.True(t, days[2].Revenue.IsZero())
}

func TestWeeklyGroupsByISOWeek(t *testing.T) {
	g := revenueGrid(t)
	require.NoError(t, g.Add(domain.SlotKey{Date: nextMon, Time: morning}, domain.Assignment{
		ID: "c", AudienceSize: 1000, ClickThroughRate: 0.1, RevenuePerMille: 1000,
	}))

	weeks := Weekly(g, DateRange{From: mon, To: nextMon})
	require.Len(t, weeks, 2)
	assert.Equal(t, 1, weeks[0].Week)
	assert.Equal(t, mon, weeks[0].Start)
	assert.Equal(t, domain.NewDate(2024, 1, 7), weeks[0].End)
	assert.Equal(t, 2, weeks[0].Campaigns)
	assert.True(t, weeks[0].Revenue.Equal(decimal.NewFromInt(85)))
	assert.Equal(t, 2, weeks[1].Week)
	assert.True(t, weeks[1].Revenue.Equal(decimal.NewFromInt(100)))
}
