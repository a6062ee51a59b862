package constraint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
)

var (
	day1    = domain.NewDate(2024, 1, 1)
	day2    = domain.NewDate(2024, 1, 2)
	day3    = domain.NewDate(2024, 1, 3)
	morning = domain.MustAnchorTime(9, 0)
	noon    = domain.MustAnchorTime(12, 0)
	evening = domain.MustAnchorTime(18, 0)
)

func policy(cap, coolDown int) domain.Policy {
	p := domain.DefaultPolicy()
	p.FrequencyCap = cap
	p.CoolDownDays = coolDown
	return p
}

func send(id, audience string) domain.Assignment {
	return domain.Assignment{ID: id, AudienceID: audience, AudienceSize: 1000, CampaignType: domain.CampaignPromotional}
}

func place(t *testing.T, g *grid.Grid, d domain.Date, at domain.AnchorTime, a domain.Assignment) {
	t.Helper()
	require.NoError(t, g.Add(domain.SlotKey{Date: d, Time: at}, a))
}

func TestCheckFrequency(t *testing.T) {
	tests := []struct {
		name      string
		cap       int
		existing  []domain.SlotKey
		candidate domain.SlotKey
		want      int
	}{
		{
			name:      "same day different time over cap 1",
			cap:       1,
			existing:  []domain.SlotKey{{Date: day1, Time: morning}},
			candidate: domain.SlotKey{Date: day1, Time: evening},
			want:      1,
		},
		{
			name:      "earlier candidate still shares a window",
			cap:       1,
			existing:  []domain.SlotKey{{Date: day1, Time: evening}},
			candidate: domain.SlotKey{Date: day1, Time: morning},
			want:      1,
		},
		{
			name:      "exactly 24h apart is a new window",
			cap:       1,
			existing:  []domain.SlotKey{{Date: day1, Time: morning}},
			candidate: domain.SlotKey{Date: day2, Time: morning},
			want:      0,
		},
		{
			name:      "within cap 2",
			cap:       2,
			existing:  []domain.SlotKey{{Date: day1, Time: morning}},
			candidate: domain.SlotKey{Date: day1, Time: noon},
			want:      0,
		},
		{
			name: "sends on both sides never share one window",
			cap:  2,
			existing: []domain.SlotKey{
				{Date: day1, Time: noon},
				{Date: day3, Time: domain.MustAnchorTime(8, 0)},
			},
			candidate: domain.SlotKey{Date: day2, Time: morning},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.New()
			for i, key := range tt.existing {
				place(t, g, key.Date, key.Time, send(fmt.Sprintf("e%d", i), "vip"))
			}
			got := CheckFrequency(g, policy(tt.cap, 0), Candidate{Key: tt.candidate, Assignment: send("c", "vip")})
			require.Len(t, got, tt.want)
			for _, v := range got {
				assert.Equal(t, domain.ViolationFrequency, v.Type)
				assert.Equal(t, domain.SeverityHigh, v.Severity)
			}
		})
	}
}

func TestCheckFrequencyIgnoresDisjointAudiences(t *testing.T) {
	g := grid.New()
	place(t, g, day1, morning, send("a", "vip"))

	got := CheckFrequency(g, policy(1, 0), Candidate{
		Key:        domain.SlotKey{Date: day1, Time: noon},
		Assignment: send("b", "churned"),
	})
	assert.Empty(t, got)
}

func TestCheckFrequencyTagOverlap(t *testing.T) {
	g := grid.New()
	a := send("a", "vip")
	a.AudienceTags = []string{"engaged"}
	place(t, g, day1, morning, a)

	b := send("b", "newsletter-readers")
	b.AudienceTags = []string{"Engaged"}
	got := CheckFrequency(g, policy(1, 0), Candidate{Key: domain.SlotKey{Date: day1, Time: noon}, Assignment: b})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a"}, got[0].ConflictingIDs)
}

// Adding more sends for the same audience can only keep or raise a frequency
// violation.
func TestCheckFrequencyMonotonic(t *testing.T) {
	times := []domain.AnchorTime{morning, noon, evening}
	candidate := Candidate{Key: domain.SlotKey{Date: day2, Time: noon}, Assignment: send("c", "vip")}
	p := policy(2, 0)

	g := grid.New()
	place(t, g, day2, morning, send("a0", "vip"))
	place(t, g, day2, evening, send("a1", "vip"))
	require.NotEmpty(t, CheckFrequency(g, p, candidate))

	for i, d := range []domain.Date{day1, day2, day3} {
		for j, at := range times {
			id := fmt.Sprintf("x%d%d", i, j)
			require.NoError(t, g.Add(domain.SlotKey{Date: d, Time: at}, send(id, "vip")))
			got := CheckFrequency(g, p, candidate)
			require.NotEmpty(t, got, "violation disappeared after adding %s", id)
			assert.Equal(t, domain.SeverityHigh, got[0].Severity)
		}
	}
}

func TestCheckCoolDown(t *testing.T) {
	g := grid.New()
	place(t, g, day1, morning, send("a", "vip"))
	place(t, g, day2, morning, send("b", "vip"))

	candidate := Candidate{Key: domain.SlotKey{Date: day3, Time: morning}, Assignment: send("c", "vip")}

	got := CheckCoolDown(g, policy(5, 2), candidate)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"b"}, got[0].ConflictingIDs, "nearest prior date first")
	assert.Equal(t, []string{"a"}, got[1].ConflictingIDs)
	assert.Equal(t, domain.SeverityHigh, got[0].Severity)

	assert.Len(t, CheckCoolDown(g, policy(5, 1), candidate), 1)
	assert.Empty(t, CheckCoolDown(g, policy(5, 0), candidate))
}

func TestCheckCoolDownIgnoresSameDayAndLater(t *testing.T) {
	g := grid.New()
	place(t, g, day2, morning, send("same", "vip"))
	place(t, g, day3, morning, send("later", "vip"))

	got := CheckCoolDown(g, policy(5, 3), Candidate{Key: domain.SlotKey{Date: day2, Time: evening}, Assignment: send("c", "vip")})
	assert.Empty(t, got)
}

func TestCheckCoolDownTransactionalIsAdvisory(t *testing.T) {
	g := grid.New()
	place(t, g, day1, morning, send("a", "vip"))

	c := send("c", "vip")
	c.CampaignType = domain.CampaignTransactional
	got := CheckCoolDown(g, policy(5, 2), Candidate{Key: domain.SlotKey{Date: day2, Time: morning}, Assignment: c})
	require.Len(t, got, 1)
	assert.Equal(t, domain.SeverityLow, got[0].Severity)
	assert.Empty(t, domain.Blocking(got))
}

func TestCheckOccupancy(t *testing.T) {
	g := grid.New()
	key := domain.SlotKey{Date: day1, Time: morning}
	assert.False(t, CheckSlotOccupancy(g, key))
	place(t, g, day1, morning, send("a", "vip"))
	assert.True(t, CheckSlotOccupancy(g, key))

	candidate := Candidate{Key: key, Assignment: send("b", "churned")}

	shared := Check(g, policy(5, 0), candidate)
	require.Len(t, shared, 1)
	assert.Equal(t, domain.ViolationOccupancy, shared[0].Type)
	assert.Equal(t, domain.SeverityLow, shared[0].Severity)

	p := policy(5, 0)
	p.ExclusiveSlots = true
	exclusive := Check(g, p, candidate)
	require.Len(t, exclusive, 1)
	assert.Equal(t, domain.SeverityHigh, exclusive[0].Severity)
}

func TestCheckOrdersBySeverity(t *testing.T) {
	g := grid.New()
	place(t, g, day1, morning, send("a", "vip"))
	place(t, g, day2, morning, send("b", "other"))

	got := Check(g, policy(1, 2), Candidate{Key: domain.SlotKey{Date: day2, Time: morning}, Assignment: send("c", "vip")})
	require.Len(t, got, 2)
	assert.Equal(t, domain.SeverityHigh, got[0].Severity)
	assert.Equal(t, domain.ViolationCoolDown, got[0].Type)
	assert.Equal(t, domain.SeverityLow, got[1].Severity)

	top, ok := domain.Highest(got)
	require.True(t, ok)
	assert.Equal(t, domain.SeverityHigh, top.Severity)
}
