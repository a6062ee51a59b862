package domain

import "slices"

// ViolationType names the rule a placement breaks.
type ViolationType string

const (
	ViolationFrequency ViolationType = "frequency"
	ViolationCoolDown  ViolationType = "cooldown"
	ViolationOccupancy ViolationType = "occupancy"
)

// Severity orders violations; only SeverityHigh blocks a command.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns 0 for high, 1 for medium and 2 for low. Unknown severities
// rank after low.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Violation is one rule a candidate placement would break.
type Violation struct {
	Type           ViolationType `json:"type"`
	Severity       Severity      `json:"severity"`
	Message        string        `json:"message"`
	Slot           SlotKey       `json:"slot"`
	ConflictingIDs []string      `json:"conflictingIds,omitempty"`
}

// SortViolations orders vs by severity, highest first, keeping the relative
// order of equal severities.
func SortViolations(vs []Violation) {
	slices.SortStableFunc(vs, func(a, b Violation) int {
		return a.Severity.Rank() - b.Severity.Rank()
	})
}

// Blocking returns the high severity violations of vs.
func Blocking(vs []Violation) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.Severity == SeverityHigh {
			out = append(out, v)
		}
	}
	return out
}

// Highest returns the most severe violation and false when vs is empty.
func Highest(vs []Violation) (Violation, bool) {
	if len(vs) == 0 {
		return Violation{}, false
	}
	best := vs[0]
	for _, v := range vs[1:] {
		if v.Severity.Rank() < best.Severity.Rank() {
			best = v
		}
	}
	return best, true
}
