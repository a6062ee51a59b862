// Package notify delivers command outcomes to the operator.
package notify

import (
	"context"
	"log/slog"

	"campaign-planner/internal/core/port"
)

// SlogNotifier writes every notification as one structured log line. Errors
// are logged at error level, warnings at warn and successes at info.
type SlogNotifier struct {
	logger *slog.Logger
}

var _ port.Notifier = (*SlogNotifier)(nil)

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{logger: logger.With(slog.String("component", "notifier"))}
}

func (n *SlogNotifier) Notify(ctx context.Context, note port.Notification) {
	level := slog.LevelInfo
	switch note.Level {
	case port.NotifyWarning:
		level = slog.LevelWarn
	case port.NotifyError:
		level = slog.LevelError
	}
	n.logger.LogAttrs(ctx, level, note.Message,
		slog.String("command", note.Command),
		slog.String("level", string(note.Level)),
	)
}
