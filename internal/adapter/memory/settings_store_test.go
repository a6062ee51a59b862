package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-planner/internal/core/domain"
)

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsStore()

	_, found, err := s.LoadPolicy(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	p := domain.DefaultPolicy()
	require.NoError(t, s.SavePolicy(ctx, p))
	p.AnchorTimes[0] = domain.MustAnchorTime(7, 0)

	got, found, err := s.LoadPolicy(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.DefaultPolicy(), got)
}
