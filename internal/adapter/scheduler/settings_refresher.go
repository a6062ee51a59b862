// Package scheduler runs periodic background jobs of the planner.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
)

// Reloader re-reads persisted settings.
type Reloader interface {
	Reload(ctx context.Context) error
}

// SettingsRefresher periodically re-hydrates the active policy so changes
// written by another instance are picked up.
type SettingsRefresher struct {
	cronEngine *cron.Cron
	reloader   Reloader
	logger     *slog.Logger
	spec       string
	timeout    time.Duration
}

// NewSettingsRefresher schedules reloader on spec, e.g. "@every 1m" or
// "*/5 * * * *".
func NewSettingsRefresher(reloader Reloader, logger *slog.Logger, spec string) *SettingsRefresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsRefresher{
		cronEngine: cron.New(cron.WithLocation(time.UTC)),
		reloader:   reloader,
		logger:     logger.With(slog.String("component", "settings-refresher")),
		spec:       spec,
		timeout:    30 * time.Second,
	}
}

// Start registers the job and starts the scheduler in its own goroutine.
func (s *SettingsRefresher) Start() error {
	if _, err := s.cronEngine.AddFunc(s.spec, s.Run); err != nil {
		return errors.Wrapf(err, "schedule settings refresh %q", s.spec)
	}
	s.cronEngine.Start()
	s.logger.Info("settings refresher started", slog.String("spec", s.spec))
	return nil
}

// Run performs one reload.
func (s *SettingsRefresher) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.reloader.Reload(ctx); err != nil {
		s.logger.Error("settings refresh failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("settings refreshed")
}

// Stop stops scheduling and waits for a running job to finish or ctx to
// expire.
func (s *SettingsRefresher) Stop(ctx context.Context) {
	done := s.cronEngine.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
