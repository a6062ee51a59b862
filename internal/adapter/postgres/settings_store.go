package postgres

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

// SettingsStore keeps the policy in the single row of planner_settings.
type SettingsStore struct {
	pool *pgxpool.Pool
}

var _ port.SettingsStore = (*SettingsStore)(nil)

func NewSettingsStore(pool *pgxpool.Pool) *SettingsStore {
	return &SettingsStore{pool: pool}
}

func (s *SettingsStore) LoadPolicy(ctx context.Context) (domain.Policy, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT policy FROM planner_settings WHERE id = 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Policy{}, false, nil
	}
	if err != nil {
		return domain.Policy{}, false, errors.Wrap(err, "load policy")
	}
	var p domain.Policy
	if err = json.Unmarshal(raw, &p); err != nil {
		return domain.Policy{}, false, errors.Wrap(err, "decode policy")
	}
	return p, true, nil
}

func (s *SettingsStore) SavePolicy(ctx context.Context, policy domain.Policy) error {
	raw, err := json.Marshal(policy)
	if err != nil {
		return errors.Wrap(err, "encode policy")
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO planner_settings (id, policy, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE SET policy = EXCLUDED.policy, updated_at = now()`, raw)
	if err != nil {
		return errors.Wrap(err, "save policy")
	}
	return nil
}
