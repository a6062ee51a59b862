package configs

import (
	"github.com/cockroachdb/errors"

	"campaign-planner/internal/core/domain"
)

// Planner is the scheduling policy used until the settings store provides
// one. AnchorTimes is a comma separated list of HH:MM values.
type Planner struct {
	FrequencyCap          int      `env:"FREQUENCY_CAP" envDefault:"1"`
	CoolDownDays          int      `env:"COOL_DOWN_DAYS" envDefault:"2"`
	AnchorTimes           []string `env:"ANCHOR_TIMES" envDefault:"09:00,12:00,15:00,18:00" envSeparator:","`
	MaxPlanningWindowDays int      `env:"MAX_PLANNING_WINDOW_DAYS" envDefault:"90"`
	ExclusiveSlots        bool     `env:"EXCLUSIVE_SLOTS" envDefault:"false"`
	HistoryLimit          int      `env:"HISTORY_LIMIT" envDefault:"100"`
}

// Policy converts the configuration into a validated domain policy.
func (c Planner) Policy() (domain.Policy, error) {
	p := domain.Policy{
		FrequencyCap:          c.FrequencyCap,
		CoolDownDays:          c.CoolDownDays,
		MaxPlanningWindowDays: c.MaxPlanningWindowDays,
		ExclusiveSlots:        c.ExclusiveSlots,
		HistoryLimit:          c.HistoryLimit,
	}
	for _, s := range c.AnchorTimes {
		at, err := domain.ParseAnchorTime(s)
		if err != nil {
			return domain.Policy{}, errors.Wrap(err, "PLANNER_ANCHOR_TIMES")
		}
		p.AnchorTimes = append(p.AnchorTimes, at)
	}
	p = p.Normalized()
	if err := p.Validate(); err != nil {
		return domain.Policy{}, errors.Wrap(err, "planner policy")
	}
	return p, nil
}
