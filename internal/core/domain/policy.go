package domain

import (
	"fmt"
	"slices"
)

// Policy is the process-wide scheduling configuration read by the
// constraint checker. It is changed only through explicit settings
// commands.
type Policy struct {
	// FrequencyCap is the maximum number of sends an audience may receive in
	// any 24 hour window.
	FrequencyCap int `json:"frequencyCap"`
	// CoolDownDays is the minimum gap in days between sends to overlapping
	// audiences.
	CoolDownDays int `json:"coolDownDays"`
	// AnchorTimes are the allowed times of day, kept sorted.
	AnchorTimes []AnchorTime `json:"anchorTimes"`
	// MaxPlanningWindowDays bounds how far ahead of today a send may be placed.
	MaxPlanningWindowDays int `json:"maxPlanningWindowDays"`
	// ExclusiveSlots makes an occupied slot block new placements instead of
	// only warning about them.
	ExclusiveSlots bool `json:"exclusiveSlots"`
	// HistoryLimit caps the number of undoable commands retained.
	HistoryLimit int `json:"historyLimit"`
}

// DefaultPolicy returns the settings a fresh session starts with.
func DefaultPolicy() Policy {
	return Policy{
		FrequencyCap: 1,
		CoolDownDays: 2,
		AnchorTimes: []AnchorTime{
			MustAnchorTime(9, 0),
			MustAnchorTime(12, 0),
			MustAnchorTime(15, 0),
			MustAnchorTime(18, 0),
		},
		MaxPlanningWindowDays: 90,
		HistoryLimit:          100,
	}
}

// Validate reports the first invalid field.
func (p Policy) Validate() error {
	switch {
	case p.FrequencyCap < 1:
		return fmt.Errorf("frequency cap must be at least 1, got %d", p.FrequencyCap)
	case p.CoolDownDays < 0:
		return fmt.Errorf("cool-down must not be negative, got %d", p.CoolDownDays)
	case len(p.AnchorTimes) == 0:
		return fmt.Errorf("at least one anchor time is required")
	case p.MaxPlanningWindowDays < 1:
		return fmt.Errorf("planning window must be at least 1 day, got %d", p.MaxPlanningWindowDays)
	case p.HistoryLimit < 1:
		return fmt.Errorf("history limit must be at least 1, got %d", p.HistoryLimit)
	}
	seen := make(map[AnchorTime]struct{}, len(p.AnchorTimes))
	for _, a := range p.AnchorTimes {
		if _, dup := seen[a]; dup {
			return fmt.Errorf("duplicate anchor time %s", a)
		}
		seen[a] = struct{}{}
	}
	return nil
}

// Normalized returns a copy with anchor times sorted.
func (p Policy) Normalized() Policy {
	p.AnchorTimes = slices.Clone(p.AnchorTimes)
	slices.SortFunc(p.AnchorTimes, func(a, b AnchorTime) int { return a.minutes - b.minutes })
	return p
}

// AllowsTime reports whether t is one of the configured anchors.
func (p Policy) AllowsTime(t AnchorTime) bool {
	return slices.Contains(p.AnchorTimes, t)
}

// InWindow reports whether d lies within [today, today+MaxPlanningWindowDays].
func (p Policy) InWindow(today, d Date) bool {
	if d.Before(today) {
		return false
	}
	return d.DaysSince(today) <= p.MaxPlanningWindowDays
}
