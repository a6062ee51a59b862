// Package history records grid edits as invertible changes and replays them
// for undo and redo with linear editor semantics.
package history

import (
	"time"

	"github.com/cockroachdb/errors"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrOutOfSync     = errors.New("history does not match grid")
)

// ChangeKind tells whether a change placed or removed an assignment.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
)

func (k ChangeKind) String() string {
	if k == Added {
		return "added"
	}
	return "removed"
}

// Change is one placement or removal at a known slot position.
type Change struct {
	Kind       ChangeKind
	Key        domain.SlotKey
	Index      int
	Assignment domain.Assignment
}

// Entry is everything one command changed. Entries are immutable once
// recorded.
type Entry struct {
	Label      string
	Changes    []Change
	RecordedAt time.Time
}

// Log is a bounded undo stack with a redo stack that is discarded on every
// new forward command.
type Log struct {
	undo  []Entry
	redo  []Entry
	limit int
}

// NewLog returns a log retaining at most limit entries. A limit below one is
// treated as one.
func NewLog(limit int) *Log {
	if limit < 1 {
		limit = 1
	}
	return &Log{limit: limit}
}

// SetLimit changes the retention bound, dropping the oldest undo entries if
// needed.
func (l *Log) SetLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	l.limit = limit
	l.trim()
}

// Record appends e and clears the redo stack. Entries without changes are
// ignored.
func (l *Log) Record(e Entry) {
	if len(e.Changes) == 0 {
		return
	}
	l.undo = append(l.undo, e)
	l.redo = nil
	l.trim()
}

func (l *Log) trim() {
	if over := len(l.undo) - l.limit; over > 0 {
		l.undo = append([]Entry(nil), l.undo[over:]...)
	}
}

func (l *Log) CanUndo() bool { return len(l.undo) > 0 }
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (l *Log) Depth() (undo, redo int) { return len(l.undo), len(l.redo) }

// Undo reverts the most recent entry on g.
func (l *Log) Undo(g *grid.Grid) (Entry, error) {
	if len(l.undo) == 0 {
		return Entry{}, ErrNothingToUndo
	}
	e := l.undo[len(l.undo)-1]
	for i := len(e.Changes) - 1; i >= 0; i-- {
		if err := revert(g, e.Changes[i]); err != nil {
			// put back what was already reverted so the grid stays consistent
			for _, c := range e.Changes[i+1:] {
				_ = apply(g, c)
			}
			return Entry{}, errors.Wrapf(err, "undo %q", e.Label)
		}
	}
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, e)
	return e, nil
}

// Redo re-applies the most recently undone entry on g.
func (l *Log) Redo(g *grid.Grid) (Entry, error) {
	if len(l.redo) == 0 {
		return Entry{}, ErrNothingToRedo
	}
	e := l.redo[len(l.redo)-1]
	for i, c := range e.Changes {
		if err := apply(g, c); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = revert(g, e.Changes[j])
			}
			return Entry{}, errors.Wrapf(err, "redo %q", e.Label)
		}
	}
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, e)
	return e, nil
}

func apply(g *grid.Grid, c Change) error {
	switch c.Kind {
	case Added:
		return g.Insert(c.Key, c.Index, c.Assignment)
	default:
		if _, _, ok := g.Remove(c.Key, c.Assignment.ID); !ok {
			return errors.Wrapf(ErrOutOfSync, "%s not at %s", c.Assignment.ID, c.Key)
		}
		return nil
	}
}

func revert(g *grid.Grid, c Change) error {
	switch c.Kind {
	case Added:
		if _, _, ok := g.Remove(c.Key, c.Assignment.ID); !ok {
			return errors.Wrapf(ErrOutOfSync, "%s not at %s", c.Assignment.ID, c.Key)
		}
		return nil
	default:
		return g.Insert(c.Key, c.Index, c.Assignment)
	}
}
