package domain

import "sort"

// CellKey addresses one (agent, day, slot) cell of the grid. Agent 0 is
// the synthetic bucket for unassigned activities.
type CellKey struct {
	AgentID  int64
	DateKey  string
	SlotCode string
}

// CellIndex is the derived lookup structure mapping cells to the ordered
// activities occupying them. It is immutable: every update produces a new
// top-level map sharing unchanged cell slices with the original, so a
// pre-mutation snapshot stays valid and a rollback is a reference swap.
type CellIndex struct {
	cells map[CellKey][]Activity
}

// NewCellIndex returns an empty index
func NewCellIndex() CellIndex {
	return CellIndex{cells: map[CellKey][]Activity{}}
}

// BuildCellIndex indexes a raw activity collection into cells. Activities
// with AgentID 0 land in the synthetic unassigned bucket. Runs in
// O(activities); building twice from the same input yields structurally
// identical indexes.
func BuildCellIndex(activities []Activity) CellIndex {
	cells := make(map[CellKey][]Activity, len(activities))
	for _, activity := range activities {
		key := activity.Cell()
		cells[key] = append(cells[key], activity)
	}
	return CellIndex{cells: cells}
}

// Cell returns a copy of the ordered occupant list of a cell
func (ci CellIndex) Cell(key CellKey) []Activity {
	occupants := ci.cells[key]
	if len(occupants) == 0 {
		return nil
	}
	out := make([]Activity, len(occupants))
	copy(out, occupants)
	return out
}

// CellLen returns the number of occupants of a cell
func (ci CellIndex) CellLen(key CellKey) int {
	return len(ci.cells[key])
}

// Len returns the number of non-empty cells
func (ci CellIndex) Len() int {
	return len(ci.cells)
}

// Keys returns all non-empty cell keys in deterministic order
func (ci CellIndex) Keys() []CellKey {
	keys := make([]CellKey, 0, len(ci.cells))
	for key := range ci.cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.AgentID != b.AgentID {
			return a.AgentID < b.AgentID
		}
		if a.DateKey != b.DateKey {
			return a.DateKey < b.DateKey
		}
		return a.SlotCode < b.SlotCode
	})
	return keys
}

// FindActivity locates an activity by id and returns it together with its
// cell key
func (ci CellIndex) FindActivity(id int64) (Activity, CellKey, bool) {
	for key, occupants := range ci.cells {
		for _, activity := range occupants {
			if activity.ID == id {
				return activity, key, true
			}
		}
	}
	return Activity{}, CellKey{}, false
}

// ContainsActivity returns true if the activity is present in the cell
func (ci CellIndex) ContainsActivity(key CellKey, id int64) bool {
	for _, activity := range ci.cells[key] {
		if activity.ID == id {
			return true
		}
	}
	return false
}

// HasExclusive returns true if any occupant of the cell is exclusive
func (ci CellIndex) HasExclusive(key CellKey) bool {
	for _, activity := range ci.cells[key] {
		if activity.IsExclusive {
			return true
		}
	}
	return false
}

// WithCell returns a new index with the cell replaced by the given
// occupant list. An empty list removes the cell.
func (ci CellIndex) WithCell(key CellKey, occupants []Activity) CellIndex {
	next := ci.clone()
	if len(occupants) == 0 {
		delete(next.cells, key)
		return next
	}
	owned := make([]Activity, len(occupants))
	copy(owned, occupants)
	next.cells[key] = owned
	return next
}

// WithActivityRemoved returns a new index with the activity removed from
// the cell. Order of the remaining occupants is preserved.
func (ci CellIndex) WithActivityRemoved(key CellKey, id int64) CellIndex {
	occupants := ci.cells[key]
	remaining := make([]Activity, 0, len(occupants))
	for _, activity := range occupants {
		if activity.ID != id {
			remaining = append(remaining, activity)
		}
	}
	return ci.WithCell(key, remaining)
}

// WithActivityInserted returns a new index with the activity added to the
// cell at the given drop position: left prepends, center and right append
func (ci CellIndex) WithActivityInserted(key CellKey, activity Activity, position DropZonePosition) CellIndex {
	occupants := ci.cells[key]
	next := make([]Activity, 0, len(occupants)+1)
	if position == DropZoneLeft {
		next = append(next, activity)
		next = append(next, occupants...)
	} else {
		next = append(next, occupants...)
		next = append(next, activity)
	}
	return ci.WithCell(key, next)
}

// clone copies the top-level map; cell slices are shared with the
// original until replaced
func (ci CellIndex) clone() CellIndex {
	cells := make(map[CellKey][]Activity, len(ci.cells))
	for key, occupants := range ci.cells {
		cells[key] = occupants
	}
	return CellIndex{cells: cells}
}
