package port

import (
	"context"
	"fmt"
	"strings"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
	"campaign-planner/internal/core/progress"
)

// SchedulerUseCase defines the planner operations. It is the primary port
// into the application; the HTTP adapter and tests drive it. Mock
// implementations can be generated from this interface.
type SchedulerUseCase interface {
	// Slot returns the assignments at one slot; empty when unoccupied.
	Slot(ctx context.Context, key domain.SlotKey) []domain.Assignment
	// Range returns every anchor slot of the inclusive date window.
	Range(ctx context.Context, from, to domain.Date) []grid.Cell

	// CreateSlot places a new campaign. High severity violations fail the
	// command with a *BlockedError; lower ones are returned as advice.
	CreateSlot(ctx context.Context, req SlotRequest) (domain.Assignment, []domain.Violation, error)
	// DryRun evaluates a placement without changing the grid.
	DryRun(ctx context.Context, req SlotRequest) (*DryRunResult, error)
	// RemoveSlot removes an assignment. Removing something that is not there
	// is a no-op and reports false.
	RemoveSlot(ctx context.Context, key domain.SlotKey, id string) (bool, error)
	// CloneSlot copies an assignment onto another date at the same time of
	// day under a new id.
	CloneSlot(ctx context.Context, id string, from, to domain.Date) (Placement, []domain.Violation, error)
	// MoveSlot transfers an assignment to another slot.
	MoveSlot(ctx context.Context, id string, to domain.SlotKey) (domain.Assignment, []domain.Violation, error)
	// DuplicateDay clones every assignment of one day onto another. Each
	// clone is checked on its own; successes are kept even when others fail.
	DuplicateDay(ctx context.Context, from, to domain.Date) (*DuplicateResult, error)
	// ClearDay removes every assignment of a day as one undoable step.
	ClearDay(ctx context.Context, date domain.Date) (int, error)

	Undo(ctx context.Context) (HistoryState, error)
	Redo(ctx context.Context) (HistoryState, error)
	History(ctx context.Context) HistoryState

	// Progress returns totals for the window and progress towards goals.
	Progress(ctx context.Context, r progress.DateRange, goals Goals) ProgressReport
	Daily(ctx context.Context, r progress.DateRange) []progress.DayTotals
	Weekly(ctx context.Context, r progress.DateRange) []progress.WeekTotals

	// Policy returns the active scheduling policy.
	Policy(ctx context.Context) domain.Policy
	// UpdatePolicy validates, persists and activates a new policy.
	UpdatePolicy(ctx context.Context, p domain.Policy) (domain.Policy, error)
	// Reload re-reads the policy from the settings store.
	Reload(ctx context.Context) error

	Audiences(ctx context.Context) ([]domain.Audience, error)
	Templates(ctx context.Context) ([]domain.Template, error)
}

// SlotRequest asks for a campaign to be placed at Key. Name is optional and
// defaults to "<template> → <audience>".
type SlotRequest struct {
	Key        domain.SlotKey `json:"slot"`
	AudienceID string         `json:"audienceId"`
	TemplateID string         `json:"templateId"`
	Name       string         `json:"name,omitempty"`
	ClickLimit *int64         `json:"clickLimit,omitempty"`
}

// BlockedError carries the violations that stopped a command. It matches
// ErrSchedulingBlocked under errors.Is.
type BlockedError struct {
	Violations []domain.Violation
}

func (e *BlockedError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range domain.Blocking(e.Violations) {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrSchedulingBlocked, strings.Join(msgs, "; "))
}

func (e *BlockedError) Is(target error) bool {
	return target == ErrSchedulingBlocked
}

// Placement is an assignment together with its slot.
type Placement struct {
	Key        domain.SlotKey    `json:"slot"`
	Assignment domain.Assignment `json:"assignment"`
}

// CloneFailure is one assignment DuplicateDay could not copy.
type CloneFailure struct {
	SourceID   string             `json:"sourceId"`
	Name       string             `json:"name"`
	Reason     string             `json:"reason"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

// DuplicateResult lists what DuplicateDay placed and what it skipped.
type DuplicateResult struct {
	From     domain.Date        `json:"from"`
	To       domain.Date        `json:"to"`
	Created  []Placement        `json:"created"`
	Failed   []CloneFailure     `json:"failed"`
	Warnings []domain.Violation `json:"warnings,omitempty"`
}

// DryRunResult is the outcome a CreateSlot call would have.
type DryRunResult struct {
	Candidate  domain.Assignment  `json:"candidate"`
	Violations []domain.Violation `json:"violations"`
	Blocked    bool               `json:"blocked"`
	Reach      Reach              `json:"reach"`
}

// HistoryState describes the undo stack after a command.
type HistoryState struct {
	Label     string `json:"label,omitempty"`
	CanUndo   bool   `json:"canUndo"`
	CanRedo   bool   `json:"canRedo"`
	UndoDepth int    `json:"undoDepth"`
	RedoDepth int    `json:"redoDepth"`
}

// Goals are optional targets for a progress report; zero means unset.
type Goals struct {
	Clicks  float64
	Revenue float64
}

// ProgressReport summarises a window of the plan.
type ProgressReport struct {
	Range   progress.DateRange `json:"range"`
	Totals  progress.Totals    `json:"totals"`
	Clicks  *progress.Goal     `json:"clicksGoal,omitempty"`
	Revenue *progress.Goal     `json:"revenueGoal,omitempty"`
}
