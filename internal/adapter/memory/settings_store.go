// Package memory holds process-local implementations of the outbound ports.
package memory

import (
	"context"
	"slices"
	"sync"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

// SettingsStore keeps the policy for the lifetime of the process.
type SettingsStore struct {
	mu     sync.Mutex
	policy *domain.Policy
}

var _ port.SettingsStore = (*SettingsStore)(nil)

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

func (s *SettingsStore) LoadPolicy(_ context.Context) (domain.Policy, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == nil {
		return domain.Policy{}, false, nil
	}
	p := *s.policy
	p.AnchorTimes = slices.Clone(p.AnchorTimes)
	return p, true, nil
}

func (s *SettingsStore) SavePolicy(_ context.Context, policy domain.Policy) error {
	policy.AnchorTimes = slices.Clone(policy.AnchorTimes)
	s.mu.Lock()
	s.policy = &policy
	s.mu.Unlock()
	return nil
}
