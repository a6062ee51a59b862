package redisadapter

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

// SettingsStore keeps the policy as a JSON document under a single key.
type SettingsStore struct {
	client redis.UniversalClient
	key    string
}

var _ port.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore stores the policy under "<prefix>:settings:policy".
func NewSettingsStore(client redis.UniversalClient, prefix string) *SettingsStore {
	if prefix == "" {
		prefix = "planner"
	}
	return &SettingsStore{client: client, key: prefix + ":settings:policy"}
}

func (s *SettingsStore) LoadPolicy(ctx context.Context) (domain.Policy, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Policy{}, false, nil
	}
	if err != nil {
		return domain.Policy{}, false, errors.Wrapf(err, "get %s", s.key)
	}
	var p domain.Policy
	if err = json.Unmarshal(raw, &p); err != nil {
		return domain.Policy{}, false, errors.Wrapf(err, "decode %s", s.key)
	}
	return p, true, nil
}

func (s *SettingsStore) SavePolicy(ctx context.Context, policy domain.Policy) error {
	raw, err := json.Marshal(policy)
	if err != nil {
		return errors.Wrap(err, "encode policy")
	}
	if err = s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return errors.Wrapf(err, "set %s", s.key)
	}
	return nil
}
