package grid

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"

	"campaign-planner/internal/core/domain"
)

// ErrDuplicatePlacement is returned when an assignment id is already placed
// somewhere on the grid.
var ErrDuplicatePlacement = errors.New("assignment already placed")

// Grid maps date → anchor time → ordered assignments. An assignment id is
// placed at most once. Grid is not safe for concurrent use; the owning
// usecase serialises access.
type Grid struct {
	days    map[domain.Date]map[domain.AnchorTime][]domain.Assignment
	index   map[string]domain.SlotKey
	version uint64
}

// Cell is one slot produced by Range.
type Cell struct {
	Key         domain.SlotKey      `json:"key"`
	Assignments []domain.Assignment `json:"assignments"`
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{
		days:  make(map[domain.Date]map[domain.AnchorTime][]domain.Assignment),
		index: make(map[string]domain.SlotKey),
	}
}

// Version increases on every successful mutation.
func (g *Grid) Version() uint64 { return g.version }

// Len returns the number of placed assignments.
func (g *Grid) Len() int { return len(g.index) }

// Slot returns a copy of the assignments at (date, time). An unoccupied slot
// yields an empty, non-nil slice.
func (g *Grid) Slot(date domain.Date, at domain.AnchorTime) []domain.Assignment {
	list := g.days[date][at]
	out := make([]domain.Assignment, len(list))
	copy(out, list)
	return out
}

// Occupied reports whether the slot holds at least one assignment.
func (g *Grid) Occupied(key domain.SlotKey) bool {
	return len(g.days[key.Date][key.Time]) > 0
}

// Locate returns the slot holding id.
func (g *Grid) Locate(id string) (domain.SlotKey, bool) {
	key, ok := g.index[id]
	return key, ok
}

// Get returns the assignment with the given id and its slot.
func (g *Grid) Get(id string) (domain.Assignment, domain.SlotKey, bool) {
	key, ok := g.index[id]
	if !ok {
		return domain.Assignment{}, domain.SlotKey{}, false
	}
	for _, a := range g.days[key.Date][key.Time] {
		if a.ID == id {
			return a, key, true
		}
	}
	return domain.Assignment{}, domain.SlotKey{}, false
}

// Day returns every occupied slot of date in chronological order.
func (g *Grid) Day(date domain.Date) []Cell {
	times := make([]domain.AnchorTime, 0, len(g.days[date]))
	for at, list := range g.days[date] {
		if len(list) > 0 {
			times = append(times, at)
		}
	}
	slices.SortFunc(times, func(a, b domain.AnchorTime) int { return a.Minutes() - b.Minutes() })
	cells := make([]Cell, 0, len(times))
	for _, at := range times {
		cells = append(cells, Cell{
			Key:         domain.SlotKey{Date: date, Time: at},
			Assignments: g.Slot(date, at),
		})
	}
	return cells
}

// Range yields every (date, anchor) cell in the inclusive window in
// chronological order. Dates without placements yield empty cells. The
// sequence is finite and may be iterated more than once; it reads the grid
// lazily, so mutating the grid while iterating is not supported.
func (g *Grid) Range(start, end domain.Date, anchors []domain.AnchorTime) iter.Seq[Cell] {
	sorted := slices.Clone(anchors)
	slices.SortFunc(sorted, func(a, b domain.AnchorTime) int { return a.Minutes() - b.Minutes() })
	sorted = slices.Compact(sorted)
	return func(yield func(Cell) bool) {
		for d := start; !d.After(end); d = d.AddDays(1) {
			for _, at := range sorted {
				if !yield(Cell{Key: domain.SlotKey{Date: d, Time: at}, Assignments: g.Slot(d, at)}) {
					return
				}
			}
		}
	}
}

// Assignments yields every placed assignment with its slot in chronological
// order, slot order preserved within a slot.
func (g *Grid) Assignments() iter.Seq2[domain.SlotKey, domain.Assignment] {
	keys := make([]domain.SlotKey, 0)
	for d, slots := range g.days {
		for at, list := range slots {
			if len(list) > 0 {
				keys = append(keys, domain.SlotKey{Date: d, Time: at})
			}
		}
	}
	slices.SortFunc(keys, func(a, b domain.SlotKey) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return func(yield func(domain.SlotKey, domain.Assignment) bool) {
		for _, k := range keys {
			for _, a := range g.days[k.Date][k.Time] {
				if !yield(k, a) {
					return
				}
			}
		}
	}
}

// Add appends a to the slot.
func (g *Grid) Add(key domain.SlotKey, a domain.Assignment) error {
	return g.Insert(key, -1, a)
}

// Insert places a at position index of the slot; a negative or out of range
// index appends.
func (g *Grid) Insert(key domain.SlotKey, index int, a domain.Assignment) error {
	if _, exists := g.index[a.ID]; exists {
		return ErrDuplicatePlacement
	}
	slots, ok := g.days[key.Date]
	if !ok {
		slots = make(map[domain.AnchorTime][]domain.Assignment)
		g.days[key.Date] = slots
	}
	list := slots[key.Time]
	if index < 0 || index > len(list) {
		index = len(list)
	}
	slots[key.Time] = slices.Insert(list, index, a)
	g.index[a.ID] = key
	g.version++
	return nil
}

// Remove takes assignment id out of the slot. It returns the removed
// assignment and its former position; ok is false when the slot does not
// hold id.
func (g *Grid) Remove(key domain.SlotKey, id string) (removed domain.Assignment, index int, ok bool) {
	list := g.days[key.Date][key.Time]
	index = slices.IndexFunc(list, func(a domain.Assignment) bool { return a.ID == id })
	if index < 0 {
		return domain.Assignment{}, -1, false
	}
	removed = list[index]
	list = slices.Delete(list, index, index+1)
	if len(list) == 0 {
		delete(g.days[key.Date], key.Time)
		if len(g.days[key.Date]) == 0 {
			delete(g.days, key.Date)
		}
	} else {
		g.days[key.Date][key.Time] = list
	}
	delete(g.index, id)
	g.version++
	return removed, index, true
}

// Clone returns a deep copy of g, version included.
func (g *Grid) Clone() *Grid {
	c := New()
	for d, slots := range g.days {
		cs := make(map[domain.AnchorTime][]domain.Assignment, len(slots))
		for at, list := range slots {
			cl := make([]domain.Assignment, len(list))
			for i, a := range list {
				cl[i] = a.Clone(a.ID)
			}
			cs[at] = cl
		}
		c.days[d] = cs
	}
	for id, key := range g.index {
		c.index[id] = key
	}
	c.version = g.version
	return c
}

// Snapshot returns the grid contents as a plain nested map keyed by the
// textual date and time. Empty slots are omitted.
func (g *Grid) Snapshot() map[string]map[string][]domain.Assignment {
	out := make(map[string]map[string][]domain.Assignment, len(g.days))
	for d, slots := range g.days {
		ds := make(map[string][]domain.Assignment, len(slots))
		for at, list := range slots {
			ds[at.String()] = slices.Clone(list)
		}
		out[d.String()] = ds
	}
	return out
}
