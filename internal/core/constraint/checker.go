// Package constraint holds the pure rule checks run before a placement is
// committed to the grid. Nothing here mutates its inputs.
package constraint

import (
	"fmt"
	"slices"
	"time"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
)

const frequencyWindow = 24 * time.Hour

// Candidate is a proposed placement.
type Candidate struct {
	Key        domain.SlotKey
	Assignment domain.Assignment
}

type placed struct {
	key domain.SlotKey
	at  time.Time
	id  string
}

// overlapping returns every placed assignment, other than the candidate
// itself, whose audience overlaps the candidate's.
func overlapping(g *grid.Grid, c Candidate) []placed {
	var out []placed
	for key, a := range g.Assignments() {
		if a.ID == c.Assignment.ID {
			continue
		}
		if c.Assignment.OverlapsWith(a) {
			out = append(out, placed{key: key, at: key.At(), id: a.ID})
		}
	}
	return out
}

// CheckFrequency reports a high severity violation when any 24 hour window
// containing the candidate would hold more than policy.FrequencyCap sends to
// overlapping audiences, the candidate included.
func CheckFrequency(g *grid.Grid, policy domain.Policy, c Candidate) []domain.Violation {
	t := c.Key.At()
	var near []placed
	for _, p := range overlapping(g, c) {
		if p.at.After(t.Add(-frequencyWindow)) && p.at.Before(t.Add(frequencyWindow)) {
			near = append(near, p)
		}
	}
	if len(near) == 0 {
		return nil
	}

	// Every window worth testing starts at the candidate or at an earlier
	// send that is still within 24h of it.
	starts := []time.Time{t}
	for _, p := range near {
		if !p.at.After(t) {
			starts = append(starts, p.at)
		}
	}

	bestCount := 0
	var bestIDs []string
	for _, s := range starts {
		end := s.Add(frequencyWindow)
		count := 1
		var ids []string
		for _, p := range near {
			if !p.at.Before(s) && p.at.Before(end) {
				count++
				ids = append(ids, p.id)
			}
		}
		if count > bestCount {
			bestCount = count
			bestIDs = ids
		}
	}
	if bestCount <= policy.FrequencyCap {
		return nil
	}
	return []domain.Violation{{
		Type:     domain.ViolationFrequency,
		Severity: domain.SeverityHigh,
		Message: fmt.Sprintf("audience %q would receive %d sends within 24h (cap %d)",
			c.Assignment.AudienceID, bestCount, policy.FrequencyCap),
		Slot:           c.Key,
		ConflictingIDs: bestIDs,
	}}
}

// CheckCoolDown reports one violation per earlier date, nearest first, on
// which an overlapping audience was sent to within policy.CoolDownDays before
// the candidate's date. Transactional sends only get a low severity warning.
func CheckCoolDown(g *grid.Grid, policy domain.Policy, c Candidate) []domain.Violation {
	if policy.CoolDownDays <= 0 {
		return nil
	}
	byDate := make(map[domain.Date][]string)
	for _, p := range overlapping(g, c) {
		gap := c.Key.Date.DaysSince(p.key.Date)
		if gap > 0 && gap <= policy.CoolDownDays {
			byDate[p.key.Date] = append(byDate[p.key.Date], p.id)
		}
	}
	if len(byDate) == 0 {
		return nil
	}

	dates := make([]domain.Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b domain.Date) int { return b.DaysSince(a) })

	severity := domain.SeverityHigh
	if c.Assignment.CampaignType == domain.CampaignTransactional {
		severity = domain.SeverityLow
	}
	out := make([]domain.Violation, 0, len(dates))
	for _, d := range dates {
		out = append(out, domain.Violation{
			Type:     domain.ViolationCoolDown,
			Severity: severity,
			Message: fmt.Sprintf("audience %q was targeted on %s, %d day(s) before %s (cool-down %d)",
				c.Assignment.AudienceID, d, c.Key.Date.DaysSince(d), c.Key.Date, policy.CoolDownDays),
			Slot:           c.Key,
			ConflictingIDs: byDate[d],
		})
	}
	return out
}

// CheckSlotOccupancy reports whether the slot already holds an assignment.
func CheckSlotOccupancy(g *grid.Grid, key domain.SlotKey) bool {
	return g.Occupied(key)
}

// occupancy reports the slot's other occupants. The violation blocks only
// when the policy makes slots exclusive.
func occupancy(g *grid.Grid, policy domain.Policy, c Candidate) []domain.Violation {
	if !CheckSlotOccupancy(g, c.Key) {
		return nil
	}
	var ids []string
	for _, a := range g.Slot(c.Key.Date, c.Key.Time) {
		if a.ID != c.Assignment.ID {
			ids = append(ids, a.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	severity := domain.SeverityLow
	if policy.ExclusiveSlots {
		severity = domain.SeverityHigh
	}
	return []domain.Violation{{
		Type:           domain.ViolationOccupancy,
		Severity:       severity,
		Message:        fmt.Sprintf("slot %s already holds %d campaign(s)", c.Key, len(ids)),
		Slot:           c.Key,
		ConflictingIDs: ids,
	}}
}

// Check runs every rule and returns the violations ordered by severity,
// highest first.
func Check(g *grid.Grid, policy domain.Policy, c Candidate) []domain.Violation {
	var out []domain.Violation
	out = append(out, CheckFrequency(g, policy, c)...)
	out = append(out, CheckCoolDown(g, policy, c)...)
	out = append(out, occupancy(g, policy, c)...)
	domain.SortViolations(out)
	return out
}
