// Package progress derives display totals from the planning grid. All
// functions are pure and recompute from the grid on each call.
package progress

import (
	"github.com/shopspring/decimal"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
)

var perMille = decimal.NewFromInt(1000)

// DateRange is an inclusive window of days.
type DateRange struct {
	From domain.Date `json:"from"`
	To   domain.Date `json:"to"`
}

// Contains reports whether d lies in the window.
func (r DateRange) Contains(d domain.Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// Totals are the projected outcomes of a set of sends.
type Totals struct {
	Campaigns  int             `json:"campaigns"`
	Recipients int64           `json:"recipients"`
	Clicks     float64         `json:"clicks"`
	Revenue    decimal.Decimal `json:"revenue"`
}

func (t *Totals) add(a domain.Assignment) {
	clicks := a.ExpectedClicks()
	t.Campaigns++
	t.Recipients += a.AudienceSize
	t.Clicks += clicks
	t.Revenue = t.Revenue.Add(revenue(a))
}

// revenue is clicks × revenue-per-mille / 1000 in decimal arithmetic, so
// sums of round inputs stay exact.
func revenue(a domain.Assignment) decimal.Decimal {
	clicks := decimal.NewFromInt(a.AudienceSize).Mul(decimal.NewFromFloat(a.ClickThroughRate))
	if a.ClickLimit != nil {
		if limit := decimal.NewFromInt(*a.ClickLimit); limit.LessThan(clicks) {
			clicks = limit
		}
	}
	return clicks.Mul(decimal.NewFromFloat(a.RevenuePerMille)).Div(perMille)
}

func collect(g *grid.Grid, r DateRange) Totals {
	var t Totals
	for key, a := range g.Assignments() {
		if r.Contains(key.Date) {
			t.add(a)
		}
	}
	return t
}

// TotalClicks sums audience size × click-through rate over the window,
// honouring per-assignment click limits.
func TotalClicks(g *grid.Grid, r DateRange) float64 {
	return collect(g, r).Clicks
}

// TotalRevenue sums audience size × click-through rate × revenue per mille
// / 1000 over the window.
func TotalRevenue(g *grid.Grid, r DateRange) decimal.Decimal {
	return collect(g, r).Revenue
}

// Summary returns all totals for the window at once.
func Summary(g *grid.Grid, r DateRange) Totals {
	return collect(g, r)
}

// Goal is progress of a current value towards a target.
type Goal struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
}

// ProgressToGoal returns current as a percentage of target, capped at 100.
// A non-positive target yields 0%.
func ProgressToGoal(current, target float64) Goal {
	g := Goal{Current: current, Target: target}
	if target <= 0 {
		return g
	}
	g.Percentage = min(100, current/target*100)
	if g.Percentage < 0 {
		g.Percentage = 0
	}
	return g
}

// DayTotals are the totals of one calendar day.
type DayTotals struct {
	Date domain.Date `json:"date"`
	Totals
}

// Daily returns one entry per day of the window, empty days included.
func Daily(g *grid.Grid, r DateRange) []DayTotals {
	if r.From.After(r.To) {
		return nil
	}
	byDay := make(map[domain.Date]*Totals)
	for key, a := range g.Assignments() {
		if !r.Contains(key.Date) {
			continue
		}
		t, ok := byDay[key.Date]
		if !ok {
			t = &Totals{}
			byDay[key.Date] = t
		}
		t.add(a)
	}
	out := make([]DayTotals, 0, r.To.DaysSince(r.From)+1)
	for d := r.From; !d.After(r.To); d = d.AddDays(1) {
		dt := DayTotals{Date: d}
		if t, ok := byDay[d]; ok {
			dt.Totals = *t
		}
		out = append(out, dt)
	}
	return out
}

// WeekTotals are the totals of one ISO week clipped to the requested window.
type WeekTotals struct {
	Year  int         `json:"year"`
	Week  int         `json:"week"`
	Start domain.Date `json:"start"`
	End   domain.Date `json:"end"`
	Totals
}

// Weekly groups Daily into ISO weeks (Monday to Sunday).
func Weekly(g *grid.Grid, r DateRange) []WeekTotals {
	var out []WeekTotals
	for _, d := range Daily(g, r) {
		y, w := d.Date.ISOWeek()
		if n := len(out); n == 0 || out[n-1].Year != y || out[n-1].Week != w {
			out = append(out, WeekTotals{Year: y, Week: w, Start: d.Date})
		}
		cur := &out[len(out)-1]
		cur.End = d.Date
		cur.Campaigns += d.Campaigns
		cur.Recipients += d.Recipients
		cur.Clicks += d.Clicks
		cur.Revenue = cur.Revenue.Add(d.Revenue)
	}
	return out
}
