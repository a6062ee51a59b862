package port

import (
	"context"

	"campaign-planner/internal/core/domain"
)

// AudienceProvider supplies recipient segments. It is read-only to the
// planner. GetAudience returns ErrUnknownAudience for unknown ids.
type AudienceProvider interface {
	GetAudience(ctx context.Context, id string) (domain.Audience, error)
	ListAudiences(ctx context.Context) ([]domain.Audience, error)
}

// TemplateProvider supplies email templates. GetTemplate returns
// ErrUnknownTemplate for unknown ids.
type TemplateProvider interface {
	GetTemplate(ctx context.Context, id string) (domain.Template, error)
	ListTemplates(ctx context.Context) ([]domain.Template, error)
}

// SettingsStore persists the scheduling policy between sessions. LoadPolicy
// reports found=false when nothing has been saved yet.
type SettingsStore interface {
	LoadPolicy(ctx context.Context) (policy domain.Policy, found bool, err error)
	SavePolicy(ctx context.Context, policy domain.Policy) error
}

// NotificationLevel is the tone of a user-facing message.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyWarning NotificationLevel = "warning"
	NotifyError   NotificationLevel = "error"
)

// Notification is a human readable outcome of one command.
type Notification struct {
	Level   NotificationLevel
	Command string
	Message string
}

// Notifier receives command outcomes. Delivery is fire-and-forget; the
// planner never waits for or inspects an acknowledgement.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Reach is an estimate of what one send would achieve.
type Reach struct {
	Recipients int64   `json:"recipients"`
	Delivered  float64 `json:"delivered"`
	Opens      float64 `json:"opens"`
	Clicks     float64 `json:"clicks"`
}

// ReachEstimator projects the outcome of sending template t to audience a.
// Implementations must be deterministic.
type ReachEstimator interface {
	Estimate(a domain.Audience, t domain.Template) Reach
}
