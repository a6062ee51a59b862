package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"campaign-planner/internal/core/constraint"
	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
	"campaign-planner/internal/core/history"
	"campaign-planner/internal/core/port"
	"campaign-planner/internal/core/progress"
	"campaign-planner/internal/observability"
	"campaign-planner/internal/pkg/clock"
)

// Dependencies are the collaborators of a SchedulerUseCase. Settings,
// Notifier and Estimator are optional.
type Dependencies struct {
	Audiences port.AudienceProvider
	Templates port.TemplateProvider
	Settings  port.SettingsStore
	Notifier  port.Notifier
	Estimator port.ReachEstimator
	Clock     clock.Clock
	Metrics   observability.MetricsRegistry
	Logger    *slog.Logger

	// Policy is the policy used until the settings store says otherwise. The
	// zero value means domain.DefaultPolicy.
	Policy domain.Policy
}

// SchedulerUseCase owns the planning grid, its undo history and the active
// policy. All methods are safe for concurrent use; commands run one at a
// time.
type SchedulerUseCase struct {
	mu      sync.Mutex
	grid    *grid.Grid
	history *history.Log
	policy  domain.Policy

	// policyGen counts applied policies so Reload can tell whether the
	// policy changed while it was reading the store.
	policyGen uint64

	audiences port.AudienceProvider
	templates port.TemplateProvider
	settings  port.SettingsStore
	notifier  port.Notifier
	estimator port.ReachEstimator
	clock     clock.Clock
	metrics   observability.MetricsRegistry
	logger    *slog.Logger

	newID func() string
}

var _ port.SchedulerUseCase = (*SchedulerUseCase)(nil)

// NewSchedulerUseCase creates a planner with an empty grid.
func NewSchedulerUseCase(deps Dependencies) *SchedulerUseCase {
	u := &SchedulerUseCase{
		grid:      grid.New(),
		audiences: deps.Audiences,
		templates: deps.Templates,
		settings:  deps.Settings,
		notifier:  deps.Notifier,
		estimator: deps.Estimator,
		clock:     deps.Clock,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
		newID:     uuid.NewString,
	}
	if u.clock == nil {
		u.clock = clock.NewRealClock()
	}
	if u.metrics == nil {
		u.metrics = observability.NewNoOpRegistry()
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}

	policy := deps.Policy
	if len(policy.AnchorTimes) == 0 && policy.FrequencyCap == 0 {
		policy = domain.DefaultPolicy()
	}
	policy = policy.Normalized()
	if err := policy.Validate(); err != nil {
		u.logger.Warn("configured policy is invalid, using defaults", slog.String("error", err.Error()))
		policy = domain.DefaultPolicy()
	}
	u.policy = policy
	u.history = history.NewLog(policy.HistoryLimit)
	return u
}

func (u *SchedulerUseCase) today() domain.Date {
	return domain.DateOf(u.clock.Now().UTC())
}

// validateSlot checks key against the anchors and planning window of the
// active policy. Callers hold u.mu.
func (u *SchedulerUseCase) validateSlot(key domain.SlotKey) error {
	if key.Date.IsZero() {
		return errors.Wrap(port.ErrInvalidSlot, "date is required")
	}
	if !u.policy.AllowsTime(key.Time) {
		return errors.Wrapf(port.ErrInvalidSlot, "%s is not an anchor time", key.Time)
	}
	if today := u.today(); !u.policy.InWindow(today, key.Date) {
		return errors.Wrapf(port.ErrOutsidePlanningWindow, "%s is not within %d days from %s",
			key.Date, u.policy.MaxPlanningWindowDays, today)
	}
	return nil
}

func (u *SchedulerUseCase) resolve(ctx context.Context, req port.SlotRequest) (domain.Audience, domain.Template, error) {
	if u.audiences == nil || u.templates == nil {
		return domain.Audience{}, domain.Template{}, errors.New("catalog providers are not configured")
	}
	aud, err := u.audiences.GetAudience(ctx, req.AudienceID)
	if err != nil {
		return domain.Audience{}, domain.Template{}, errors.Wrapf(err, "audience %q", req.AudienceID)
	}
	tpl, err := u.templates.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		return domain.Audience{}, domain.Template{}, errors.Wrapf(err, "template %q", req.TemplateID)
	}
	return aud, tpl, nil
}

func (u *SchedulerUseCase) buildAssignment(aud domain.Audience, tpl domain.Template, req port.SlotRequest) (domain.Assignment, error) {
	a := domain.NewAssignment(u.newID(), aud, tpl)
	if req.Name != "" {
		a.Name = req.Name
	}
	if req.ClickLimit != nil {
		if *req.ClickLimit < 0 {
			return domain.Assignment{}, errors.Wrapf(port.ErrInvalidRequest, "click limit must not be negative, got %d", *req.ClickLimit)
		}
		limit := *req.ClickLimit
		a.ClickLimit = &limit
	}
	return a, nil
}

// place checks a at key and adds it when no violation blocks. The returned
// change records where it landed. Callers hold u.mu.
func (u *SchedulerUseCase) place(key domain.SlotKey, a domain.Assignment) ([]domain.Violation, history.Change, error) {
	vs := constraint.Check(u.grid, u.policy, constraint.Candidate{Key: key, Assignment: a})
	for _, v := range vs {
		u.metrics.IncrementViolation(string(v.Type), string(v.Severity))
	}
	if len(domain.Blocking(vs)) > 0 {
		return vs, history.Change{}, &port.BlockedError{Violations: vs}
	}
	if err := u.grid.Add(key, a); err != nil {
		return vs, history.Change{}, errors.Wrapf(err, "place %s at %s", a.ID, key)
	}
	return vs, history.Change{
		Kind:       history.Added,
		Key:        key,
		Index:      len(u.grid.Slot(key.Date, key.Time)) - 1,
		Assignment: a,
	}, nil
}

func (u *SchedulerUseCase) record(label string, changes ...history.Change) {
	u.history.Record(history.Entry{Label: label, Changes: changes, RecordedAt: u.clock.Now()})
}

// report publishes the outcome of a command to metrics and the notifier.
// Callers hold u.mu.
func (u *SchedulerUseCase) report(ctx context.Context, command, message string, warnings int, err error) {
	level, outcome := port.NotifySuccess, "ok"
	switch {
	case err == nil && warnings > 0:
		level = port.NotifyWarning
	case errors.Is(err, port.ErrPartialFailure):
		level, outcome = port.NotifyWarning, "partial"
	case errors.Is(err, port.ErrSchedulingBlocked):
		level, outcome = port.NotifyWarning, "blocked"
	case err != nil:
		level, outcome = port.NotifyError, "error"
	}
	if err != nil {
		message = err.Error()
	}
	u.metrics.IncrementCommand(command, outcome)
	u.metrics.SetPlacedAssignments(u.grid.Len())
	if u.notifier != nil {
		u.notifier.Notify(ctx, port.Notification{Level: level, Command: command, Message: message})
	}
}

func (u *SchedulerUseCase) Slot(_ context.Context, key domain.SlotKey) []domain.Assignment {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.grid.Slot(key.Date, key.Time)
}

// Range returns every anchor slot between from and to. Assignments sitting
// at a time that is no longer an anchor are included as extra cells.
func (u *SchedulerUseCase) Range(_ context.Context, from, to domain.Date) []grid.Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	anchors := slices.Clone(u.policy.AnchorTimes)
	for key := range u.grid.Assignments() {
		if !key.Date.Before(from) && !key.Date.After(to) && !slices.Contains(anchors, key.Time) {
			anchors = append(anchors, key.Time)
		}
	}
	return slices.Collect(u.grid.Range(from, to, anchors))
}

func (u *SchedulerUseCase) CreateSlot(ctx context.Context, req port.SlotRequest) (domain.Assignment, []domain.Violation, error) {
	const command = "create"
	aud, tpl, err := u.resolve(ctx, req)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.report(ctx, command, "", 0, err)
		return domain.Assignment{}, nil, err
	}
	if err = u.validateSlot(req.Key); err != nil {
		u.report(ctx, command, "", 0, err)
		return domain.Assignment{}, nil, err
	}
	a, err := u.buildAssignment(aud, tpl, req)
	if err != nil {
		u.report(ctx, command, "", 0, err)
		return domain.Assignment{}, nil, err
	}

	vs, change, err := u.place(req.Key, a)
	if err != nil {
		u.report(ctx, command, "", 0, err)
		return domain.Assignment{}, vs, err
	}
	u.record("create "+a.Name, change)
	u.report(ctx, command, fmt.Sprintf("scheduled %q at %s", a.Name, req.Key), len(vs), nil)
	return a, vs, nil
}

func (u *SchedulerUseCase) DryRun(ctx context.Context, req port.SlotRequest) (*port.DryRunResult, error) {
	aud, tpl, err := u.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err = u.validateSlot(req.Key); err != nil {
		return nil, err
	}
	a, err := u.buildAssignment(aud, tpl, req)
	if err != nil {
		return nil, err
	}

	vs := constraint.Check(u.grid, u.policy, constraint.Candidate{Key: req.Key, Assignment: a})
	reach := port.Reach{Recipients: aud.Size}
	if u.estimator != nil {
		reach = u.estimator.Estimate(aud, tpl)
	}
	return &port.DryRunResult{
		Candidate:  a,
		Violations: vs,
		Blocked:    len(domain.Blocking(vs)) > 0,
		Reach:      reach,
	}, nil
}

func (u *SchedulerUseCase) RemoveSlot(ctx context.Context, key domain.SlotKey, id string) (bool, error) {
	const command = "remove"
	u.mu.Lock()
	defer u.mu.Unlock()

	a, index, ok := u.grid.Remove(key, id)
	if !ok {
		u.metrics.IncrementCommand(command, "noop")
		return false, nil
	}
	u.record("remove "+a.Name, history.Change{Kind: history.Removed, Key: key, Index: index, Assignment: a})
	u.report(ctx, command, fmt.Sprintf("removed %q from %s", a.Name, key), 0, nil)
	return true, nil
}

func (u *SchedulerUseCase) CloneSlot(ctx context.Context, id string, from, to domain.Date) (port.Placement, []domain.Violation, error) {
	const command = "clone"
	u.mu.Lock()
	defer u.mu.Unlock()

	src, key, ok := u.grid.Get(id)
	if !ok || key.Date != from {
		err := errors.Wrapf(port.ErrNotFound, "assignment %s on %s", id, from)
		u.report(ctx, command, "", 0, err)
		return port.Placement{}, nil, err
	}
	target := domain.SlotKey{Date: to, Time: key.Time}
	if err := u.validateSlot(target); err != nil {
		u.report(ctx, command, "", 0, err)
		return port.Placement{}, nil, err
	}

	clone := src.Clone(u.newID())
	vs, change, err := u.place(target, clone)
	if err != nil {
		u.report(ctx, command, "", 0, err)
		return port.Placement{}, vs, err
	}
	u.record("clone "+clone.Name, change)
	u.report(ctx, command, fmt.Sprintf("copied %q to %s", clone.Name, target), len(vs), nil)
	return port.Placement{Key: target, Assignment: clone}, vs, nil
}

// MoveSlot transfers an assignment to another slot. The rules are evaluated
// as if the assignment had already left its origin.
func (u *SchedulerUseCase) MoveSlot(ctx context.Context, id string, to domain.SlotKey) (domain.Assignment, []domain.Violation, error) {
	const command = "move"
	u.mu.Lock()
	defer u.mu.Unlock()

	a, from, ok := u.grid.Get(id)
	if !ok {
		err := errors.Wrapf(port.ErrNotFound, "assignment %s", id)
		u.report(ctx, command, "", 0, err)
		return domain.Assignment{}, nil, err
	}
	if from == to {
		return a, nil, nil
	}
	if err := u.validateSlot(to); err != nil {
		u.report(ctx, command, "", 0, err)
		return domain.Assignment{}, nil, err
	}

	_, index, _ := u.grid.Remove(from, id)
	removed := history.Change{Kind: history.Removed, Key: from, Index: index, Assignment: a}
	vs, added, err := u.place(to, a)
	if err != nil {
		if restoreErr := u.grid.Insert(from, index, a); restoreErr != nil {
			err = errors.CombineErrors(err, restoreErr)
		}
		u.report(ctx, command, "", 0, err)
		return domain.Assignment{}, vs, err
	}
	u.record("move "+a.Name, removed, added)
	u.report(ctx, command, fmt.Sprintf("moved %q from %s to %s", a.Name, from, to), len(vs), nil)
	return a, vs, nil
}

func (u *SchedulerUseCase) DuplicateDay(ctx context.Context, from, to domain.Date) (*port.DuplicateResult, error) {
	const command = "duplicate-day"
	u.mu.Lock()
	defer u.mu.Unlock()

	res := &port.DuplicateResult{From: from, To: to, Created: []port.Placement{}, Failed: []port.CloneFailure{}}
	if err := u.validateSlot(domain.SlotKey{Date: to, Time: u.policy.AnchorTimes[0]}); err != nil {
		u.report(ctx, command, "", 0, err)
		return res, err
	}

	var changes []history.Change
	for _, cell := range u.grid.Day(from) {
		target := domain.SlotKey{Date: to, Time: cell.Key.Time}
		for _, src := range cell.Assignments {
			if !u.policy.AllowsTime(target.Time) {
				res.Failed = append(res.Failed, port.CloneFailure{
					SourceID: src.ID,
					Name:     src.Name,
					Reason:   fmt.Sprintf("%s is not an anchor time", target.Time),
				})
				continue
			}
			clone := src.Clone(u.newID())
			vs, change, err := u.place(target, clone)
			if err != nil {
				res.Failed = append(res.Failed, port.CloneFailure{
					SourceID:   src.ID,
					Name:       src.Name,
					Reason:     err.Error(),
					Violations: vs,
				})
				continue
			}
			changes = append(changes, change)
			res.Created = append(res.Created, port.Placement{Key: target, Assignment: clone})
			res.Warnings = append(res.Warnings, vs...)
		}
	}
	u.record(fmt.Sprintf("duplicate %s to %s", from, to), changes...)

	var err error
	switch {
	case len(res.Failed) > 0 && len(res.Created) > 0:
		err = errors.Wrapf(port.ErrPartialFailure, "%d of %d assignments copied",
			len(res.Created), len(res.Created)+len(res.Failed))
	case len(res.Failed) > 0:
		err = errors.Wrapf(port.ErrSchedulingBlocked, "none of the %d assignments of %s could be copied",
			len(res.Failed), from)
	}
	u.report(ctx, command, fmt.Sprintf("copied %d assignment(s) from %s to %s", len(res.Created), from, to), len(res.Warnings), err)
	return res, err
}

func (u *SchedulerUseCase) ClearDay(ctx context.Context, date domain.Date) (int, error) {
	const command = "clear-day"
	u.mu.Lock()
	defer u.mu.Unlock()

	var changes []history.Change
	for _, cell := range u.grid.Day(date) {
		for _, a := range cell.Assignments {
			removed, index, ok := u.grid.Remove(cell.Key, a.ID)
			if !ok {
				continue
			}
			changes = append(changes, history.Change{Kind: history.Removed, Key: cell.Key, Index: index, Assignment: removed})
		}
	}
	if len(changes) == 0 {
		u.metrics.IncrementCommand(command, "noop")
		return 0, nil
	}
	u.record("clear "+date.String(), changes...)
	u.report(ctx, command, fmt.Sprintf("removed %d assignment(s) from %s", len(changes), date), 0, nil)
	return len(changes), nil
}

func (u *SchedulerUseCase) state(label string) port.HistoryState {
	undo, redo := u.history.Depth()
	return port.HistoryState{
		Label:     label,
		CanUndo:   undo > 0,
		CanRedo:   redo > 0,
		UndoDepth: undo,
		RedoDepth: redo,
	}
}

func (u *SchedulerUseCase) Undo(ctx context.Context) (port.HistoryState, error) {
	const command = "undo"
	u.mu.Lock()
	defer u.mu.Unlock()

	e, err := u.history.Undo(u.grid)
	if err != nil {
		if errors.Is(err, history.ErrNothingToUndo) {
			err = errors.Mark(err, port.ErrNothingToUndo)
		}
		u.report(ctx, command, "", 0, err)
		return u.state(""), err
	}
	u.report(ctx, command, "undid "+e.Label, 0, nil)
	return u.state(e.Label), nil
}

func (u *SchedulerUseCase) Redo(ctx context.Context) (port.HistoryState, error) {
	const command = "redo"
	u.mu.Lock()
	defer u.mu.Unlock()

	e, err := u.history.Redo(u.grid)
	if err != nil {
		if errors.Is(err, history.ErrNothingToRedo) {
			err = errors.Mark(err, port.ErrNothingToRedo)
		}
		u.report(ctx, command, "", 0, err)
		return u.state(""), err
	}
	u.report(ctx, command, "redid "+e.Label, 0, nil)
	return u.state(e.Label), nil
}

func (u *SchedulerUseCase) History(_ context.Context) port.HistoryState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state("")
}

func (u *SchedulerUseCase) Progress(_ context.Context, r progress.DateRange, goals port.Goals) port.ProgressReport {
	u.mu.Lock()
	defer u.mu.Unlock()

	report := port.ProgressReport{Range: r, Totals: progress.Summary(u.grid, r)}
	if goals.Clicks > 0 {
		g := progress.ProgressToGoal(report.Totals.Clicks, goals.Clicks)
		report.Clicks = &g
	}
	if goals.Revenue > 0 {
		g := progress.ProgressToGoal(report.Totals.Revenue.InexactFloat64(), goals.Revenue)
		report.Revenue = &g
	}
	return report
}

func (u *SchedulerUseCase) Daily(_ context.Context, r progress.DateRange) []progress.DayTotals {
	u.mu.Lock()
	defer u.mu.Unlock()
	return progress.Daily(u.grid, r)
}

func (u *SchedulerUseCase) Weekly(_ context.Context, r progress.DateRange) []progress.WeekTotals {
	u.mu.Lock()
	defer u.mu.Unlock()
	return progress.Weekly(u.grid, r)
}

func (u *SchedulerUseCase) Policy(_ context.Context) domain.Policy {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.policy.Normalized()
}

func (u *SchedulerUseCase) UpdatePolicy(ctx context.Context, p domain.Policy) (domain.Policy, error) {
	const command = "update-settings"
	p = p.Normalized()
	if err := p.Validate(); err != nil {
		err = errors.Mark(err, port.ErrInvalidPolicy)
		u.mu.Lock()
		u.report(ctx, command, "", 0, err)
		u.mu.Unlock()
		return domain.Policy{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.settings != nil {
		if err := u.settings.SavePolicy(ctx, p); err != nil {
			err = errors.Wrap(err, "save policy")
			u.report(ctx, command, "", 0, err)
			return domain.Policy{}, err
		}
	}
	u.apply(p)
	u.report(ctx, command, "settings saved", 0, nil)
	return p.Normalized(), nil
}

// apply activates p. Callers hold u.mu.
func (u *SchedulerUseCase) apply(p domain.Policy) {
	u.policy = p
	u.policyGen++
	u.history.SetLimit(p.HistoryLimit)
}

func (u *SchedulerUseCase) Reload(ctx context.Context) error {
	if u.settings == nil {
		return nil
	}
	u.mu.Lock()
	gen := u.policyGen
	u.mu.Unlock()

	p, found, err := u.settings.LoadPolicy(ctx)
	if err != nil {
		u.metrics.IncrementSettingsReload("error")
		return errors.Wrap(err, "load policy")
	}
	if !found {
		u.metrics.IncrementSettingsReload("missing")
		return nil
	}
	p = p.Normalized()
	if err = p.Validate(); err != nil {
		u.metrics.IncrementSettingsReload("invalid")
		u.logger.Warn("stored policy is invalid, keeping the active one", slog.String("error", err.Error()))
		return errors.Mark(err, port.ErrInvalidPolicy)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.policyGen != gen {
		// a newer policy was applied while loading; it has already been saved
		u.metrics.IncrementSettingsReload("stale")
		return nil
	}
	u.apply(p)
	u.metrics.IncrementSettingsReload("ok")
	return nil
}

func (u *SchedulerUseCase) Audiences(ctx context.Context) ([]domain.Audience, error) {
	if u.audiences == nil {
		return nil, errors.New("audience provider is not configured")
	}
	return u.audiences.ListAudiences(ctx)
}

func (u *SchedulerUseCase) Templates(ctx context.Context) ([]domain.Template, error) {
	if u.templates == nil {
		return nil, errors.New("template provider is not configured")
	}
	return u.templates.ListTemplates(ctx)
}
