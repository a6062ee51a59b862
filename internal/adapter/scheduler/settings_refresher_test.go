package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReloader struct {
	calls atomic.Int32
	err   error
}

func (r *countingReloader) Reload(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestRunReloads(t *testing.T) {
	r := &countingReloader{}
	s := NewSettingsRefresher(r, nil, "@every 1h")
	s.Run()
	assert.Equal(t, int32(1), r.calls.Load())

	r.err = errors.New("store down")
	s.Run()
	assert.Equal(t, int32(2), r.calls.Load())
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := NewSettingsRefresher(&countingReloader{}, nil, "not a spec")
	assert.Error(t, s.Start())
}

func TestStartSchedules(t *testing.T) {
	r := &countingReloader{}
	s := NewSettingsRefresher(r, nil, "@every 1s")
	require.NoError(t, s.Start())
	t.Cleanup(func() { s.Stop(context.Background()) })

	assert.Eventually(t, func() bool { return r.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}
