package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-planner/internal/core/domain"
)

var (
	jan1    = domain.NewDate(2024, 1, 1)
	jan2    = domain.NewDate(2024, 1, 2)
	morning = domain.MustAnchorTime(9, 0)
	noon    = domain.MustAnchorTime(12, 0)
)

func assignment(id string) domain.Assignment {
	return domain.Assignment{ID: id, AudienceID: "aud-" + id, AudienceSize: 1000, ClickThroughRate: 0.03}
}

func TestSlotEmpty(t *testing.T) {
	g := New()
	got := g.Slot(jan1, morning)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, g.Occupied(domain.SlotKey{Date: jan1, Time: morning}))
}

func TestAddRejectsDuplicatePlacement(t *testing.T) {
	g := New()
	require.NoError(t, g.Add(domain.SlotKey{Date: jan1, Time: morning}, assignment("a")))

	err := g.Add(domain.SlotKey{Date: jan2, Time: noon}, assignment("a"))
	assert.ErrorIs(t, err, ErrDuplicatePlacement)
	assert.Equal(t, 1, g.Len())
	assert.Empty(t, g.Slot(jan2, noon))
}

func TestRemove(t *testing.T) {
	g := New()
	key := domain.SlotKey{Date: jan1, Time: morning}
	require.NoError(t, g.Add(key, assignment("a")))
	require.NoError(t, g.Add(key, assignment("b")))

	removed, idx, ok := g.Remove(key, "a")
	require.True(t, ok)
	assert.Equal(t, "a", removed.ID)
	assert.Equal(t, 0, idx)

	_, _, ok = g.Remove(key, "a")
	assert.False(t, ok, "second removal is a no-op")

	_, found := g.Locate("a")
	assert.False(t, found)
	assert.Len(t, g.Slot(jan1, morning), 1)
}

func TestInsertKeepsOrder(t *testing.T) {
	g := New()
	key := domain.SlotKey{Date: jan1, Time: morning}
	require.NoError(t, g.Add(key, assignment("a")))
	require.NoError(t, g.Add(key, assignment("c")))
	require.NoError(t, g.Insert(key, 1, assignment("b")))

	ids := []string{}
	for _, a := range g.Slot(jan1, morning) {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestRangeIsRestartable(t *testing.T) {
	g := New()
	require.NoError(t, g.Add(domain.SlotKey{Date: jan2, Time: noon}, assignment("a")))

	seq := g.Range(jan1, jan2, []domain.AnchorTime{noon, morning})
	collect := func() []Cell {
		var cells []Cell
		for c := range seq {
			cells = append(cells, c)
		}
		return cells
	}

	first := collect()
	second := collect()
	require.Len(t, first, 4)
	assert.Equal(t, first, second)

	assert.Equal(t, domain.SlotKey{Date: jan1, Time: morning}, first[0].Key)
	assert.Empty(t, first[0].Assignments)
	assert.Equal(t, domain.SlotKey{Date: jan2, Time: noon}, first[3].Key)
	assert.Len(t, first[3].Assignments, 1)
}

func TestRangeEmptyWhenStartAfterEnd(t *testing.T) {
	g := New()
	count := 0
	for range g.Range(jan2, jan1, []domain.AnchorTime{morning}) {
		count++
	}
	assert.Zero(t, count)
}

func TestAssignmentsChronological(t *testing.T) {
	g := New()
	require.NoError(t, g.Add(domain.SlotKey{Date: jan2, Time: morning}, assignment("c")))
	require.NoError(t, g.Add(domain.SlotKey{Date: jan1, Time: noon}, assignment("b")))
	require.NoError(t, g.Add(domain.SlotKey{Date: jan1, Time: morning}, assignment("a")))

	var ids []string
	for _, a := range g.Assignments() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	key := domain.SlotKey{Date: jan1, Time: morning}
	require.NoError(t, g.Add(key, assignment("a")))

	c := g.Clone()
	_, _, ok := c.Remove(key, "a")
	require.True(t, ok)

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, c.Len())
}
