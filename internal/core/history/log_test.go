package history

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/grid"
)

var (
	day     = domain.NewDate(2024, 1, 1)
	morning = domain.SlotKey{Date: day, Time: domain.MustAnchorTime(9, 0)}
	evening = domain.SlotKey{Date: day, Time: domain.MustAnchorTime(18, 0)}
)

func add(t *testing.T, g *grid.Grid, l *Log, key domain.SlotKey, id string) {
	t.Helper()
	a := domain.Assignment{ID: id, AudienceID: "aud"}
	require.NoError(t, g.Add(key, a))
	l.Record(Entry{Label: "create " + id, Changes: []Change{{Kind: Added, Key: key, Index: len(g.Slot(key.Date, key.Time)) - 1, Assignment: a}}})
}

func remove(t *testing.T, g *grid.Grid, l *Log, key domain.SlotKey, id string) {
	t.Helper()
	a, idx, ok := g.Remove(key, id)
	require.True(t, ok)
	l.Record(Entry{Label: "remove " + id, Changes: []Change{{Kind: Removed, Key: key, Index: idx, Assignment: a}}})
}

func TestUndoRedoRoundTrip(t *testing.T) {
	g := grid.New()
	l := NewLog(100)

	var states []map[string]map[string][]domain.Assignment
	states = append(states, g.Snapshot())

	add(t, g, l, morning, "a")
	states = append(states, g.Snapshot())
	add(t, g, l, morning, "b")
	states = append(states, g.Snapshot())
	add(t, g, l, evening, "c")
	states = append(states, g.Snapshot())
	remove(t, g, l, morning, "a")
	states = append(states, g.Snapshot())

	for i := len(states) - 2; i >= 0; i-- {
		_, err := l.Undo(g)
		require.NoError(t, err)
		if diff := cmp.Diff(states[i], g.Snapshot()); diff != "" {
			t.Fatalf("after undo to state %d (-want +got):\n%s", i, diff)
		}
	}
	_, err := l.Undo(g)
	assert.ErrorIs(t, err, ErrNothingToUndo)

	for i := 1; i < len(states); i++ {
		_, err := l.Redo(g)
		require.NoError(t, err)
		if diff := cmp.Diff(states[i], g.Snapshot()); diff != "" {
			t.Fatalf("after redo to state %d (-want +got):\n%s", i, diff)
		}
	}
	_, err = l.Redo(g)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestUndoRestoresSlotPosition(t *testing.T) {
	g := grid.New()
	l := NewLog(10)
	add(t, g, l, morning, "a")
	add(t, g, l, morning, "b")
	add(t, g, l, morning, "c")
	remove(t, g, l, morning, "b")

	_, err := l.Undo(g)
	require.NoError(t, err)

	var ids []string
	for _, a := range g.Slot(morning.Date, morning.Time) {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestNewCommandClearsRedo(t *testing.T) {
	g := grid.New()
	l := NewLog(10)
	add(t, g, l, morning, "a")
	_, err := l.Undo(g)
	require.NoError(t, err)
	require.True(t, l.CanRedo())

	add(t, g, l, evening, "b")
	assert.False(t, l.CanRedo())
	_, err = l.Redo(g)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestLimitDropsOldest(t *testing.T) {
	g := grid.New()
	l := NewLog(2)
	for i := 0; i < 4; i++ {
		add(t, g, l, morning, fmt.Sprintf("a%d", i))
	}
	undo, redo := l.Depth()
	assert.Equal(t, 2, undo)
	assert.Equal(t, 0, redo)

	e, err := l.Undo(g)
	require.NoError(t, err)
	assert.Equal(t, "create a3", e.Label)
	e, err = l.Undo(g)
	require.NoError(t, err)
	assert.Equal(t, "create a2", e.Label)
	assert.False(t, l.CanUndo())
	assert.Equal(t, 2, g.Len())
}

func TestRecordIgnoresEmptyEntries(t *testing.T) {
	l := NewLog(10)
	l.Record(Entry{Label: "noop"})
	assert.False(t, l.CanUndo())
}

func TestUndoOutOfSyncLeavesGridIntact(t *testing.T) {
	g := grid.New()
	l := NewLog(10)
	add(t, g, l, morning, "a")
	// bypass the log to desynchronise it
	_, _, ok := g.Remove(morning, "a")
	require.True(t, ok)
	before := g.Snapshot()

	_, err := l.Undo(g)
	assert.ErrorIs(t, err, ErrOutOfSync)
	assert.Empty(t, cmp.Diff(before, g.Snapshot()))
	assert.True(t, l.CanUndo())
}
