package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivity(id, agentID int64, slotCode string) Activity {
	return Activity{
		ID:           id,
		Name:         "activity",
		ActivityDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TimeSlotCode: slotCode,
		AgentID:      agentID,
	}
}

func TestBuildCellIndex(t *testing.T) {
	activities := []Activity{
		testActivity(1, 10, "AM"),
		testActivity(2, 10, "AM"),
		testActivity(3, 10, "PM"),
		testActivity(4, 0, "AM"), // unassigned
	}

	index := BuildCellIndex(activities)

	require.Equal(t, 3, index.Len())
	assert.Equal(t, 2, index.CellLen(CellKey{AgentID: 10, DateKey: "2026-09-05", SlotCode: "AM"}))
	assert.Equal(t, 1, index.CellLen(CellKey{AgentID: 10, DateKey: "2026-09-05", SlotCode: "PM"}))

	// Unassigned activities land in the agent-0 bucket
	assert.True(t, index.ContainsActivity(CellKey{AgentID: UnassignedAgentID, DateKey: "2026-09-05", SlotCode: "AM"}, 4))
}

func TestBuildCellIndex_Idempotent(t *testing.T) {
	activities := []Activity{
		testActivity(1, 10, "AM"),
		testActivity(2, 20, "PM"),
		testActivity(3, 0, "AM"),
	}

	first := BuildCellIndex(activities)
	second := BuildCellIndex(activities)

	require.Equal(t, first.Len(), second.Len())
	for _, key := range first.Keys() {
		assert.Equal(t, first.Cell(key), second.Cell(key))
	}
}

func TestCellIndex_FindActivity(t *testing.T) {
	index := BuildCellIndex([]Activity{
		testActivity(1, 10, "AM"),
		testActivity(2, 20, "PM"),
	})

	activity, key, ok := index.FindActivity(2)
	require.True(t, ok)
	assert.Equal(t, int64(2), activity.ID)
	assert.Equal(t, CellKey{AgentID: 20, DateKey: "2026-09-05", SlotCode: "PM"}, key)

	_, _, ok = index.FindActivity(99)
	assert.False(t, ok)
}

func TestCellIndex_SnapshotSurvivesMutation(t *testing.T) {
	source := CellKey{AgentID: 10, DateKey: "2026-09-05", SlotCode: "AM"}
	target := CellKey{AgentID: 20, DateKey: "2026-09-05", SlotCode: "AM"}

	snapshot := BuildCellIndex([]Activity{
		testActivity(1, 10, "AM"),
		testActivity(2, 10, "AM"),
	})

	moved := testActivity(1, 20, "AM")
	next := snapshot.WithActivityRemoved(source, 1)
	next = next.WithActivityInserted(target, moved, DropZoneCenter)

	// The mutated index sees the move
	assert.False(t, next.ContainsActivity(source, 1))
	assert.True(t, next.ContainsActivity(target, 1))

	// The snapshot is untouched: rollback is a reference swap
	assert.Equal(t, 2, snapshot.CellLen(source))
	assert.True(t, snapshot.ContainsActivity(source, 1))
	assert.Equal(t, 0, snapshot.CellLen(target))
}

func TestCellIndex_WithActivityInserted_Position(t *testing.T) {
	key := CellKey{AgentID: 10, DateKey: "2026-09-05", SlotCode: "AM"}
	base := BuildCellIndex([]Activity{testActivity(1, 10, "AM")})

	left := base.WithActivityInserted(key, testActivity(2, 10, "AM"), DropZoneLeft)
	require.Equal(t, 2, left.CellLen(key))
	assert.Equal(t, int64(2), left.Cell(key)[0].ID)

	right := base.WithActivityInserted(key, testActivity(2, 10, "AM"), DropZoneRight)
	assert.Equal(t, int64(2), right.Cell(key)[1].ID)

	center := base.WithActivityInserted(key, testActivity(2, 10, "AM"), DropZoneCenter)
	assert.Equal(t, int64(2), center.Cell(key)[1].ID)
}

func TestCellIndex_WithCell_EmptyRemovesCell(t *testing.T) {
	key := CellKey{AgentID: 10, DateKey: "2026-09-05", SlotCode: "AM"}
	index := BuildCellIndex([]Activity{testActivity(1, 10, "AM")})

	next := index.WithActivityRemoved(key, 1)

	assert.Equal(t, 0, next.Len())
	assert.Equal(t, 1, index.Len())
}

func TestCellIndex_HasExclusive(t *testing.T) {
	exclusive := testActivity(1, 10, "AM")
	exclusive.IsExclusive = true

	index := BuildCellIndex([]Activity{exclusive, testActivity(2, 20, "AM")})

	assert.True(t, index.HasExclusive(CellKey{AgentID: 10, DateKey: "2026-09-05", SlotCode: "AM"}))
	assert.False(t, index.HasExclusive(CellKey{AgentID: 20, DateKey: "2026-09-05", SlotCode: "AM"}))
}
