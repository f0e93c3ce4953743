package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campora/PMS-SchedulerService/pkg/ptr"
)

func TestEffectiveCapacity(t *testing.T) {
	unit := RentalUnit{ID: 1, Capacity: 8}

	tests := []struct {
		name  string
		model *ProductModel
		want  int
	}{
		{
			name:  "no model uses unit capacity",
			model: nil,
			want:  8,
		},
		{
			name:  "accommodation accounting with stricter model cap",
			model: &ProductModel{QtyAccountingMethod: QtyAccountingAccommodation, Capacity: ptr.Ptr(6)},
			want:  6,
		},
		{
			name:  "accommodation accounting with looser model cap",
			model: &ProductModel{QtyAccountingMethod: QtyAccountingAccommodation, Capacity: ptr.Ptr(12)},
			want:  8,
		},
		{
			name:  "person accounting ignores model cap",
			model: &ProductModel{QtyAccountingMethod: QtyAccountingPerson, Capacity: ptr.Ptr(2)},
			want:  8,
		},
		{
			name:  "accommodation accounting without model cap",
			model: &ProductModel{QtyAccountingMethod: QtyAccountingAccommodation},
			want:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveCapacity(unit, tt.model))
		})
	}
}

func TestAllocateQuantities(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		units     []RentalUnit
		want      []int
	}{
		{
			name:      "remaining below every capacity",
			remaining: 4,
			units:     []RentalUnit{{ID: 1, Capacity: 6}, {ID: 2, Capacity: 6}},
			want:      []int{4, 4},
		},
		{
			name:      "remaining above capacity gives full capacity",
			remaining: 10,
			units:     []RentalUnit{{ID: 1, Capacity: 6}, {ID: 2, Capacity: 6}},
			want:      []int{6, 6},
		},
		{
			name:      "requirement already covered",
			remaining: 0,
			units:     []RentalUnit{{ID: 1, Capacity: 6}, {ID: 2, Capacity: 4}},
			want:      []int{6, 4},
		},
		{
			name:      "negative remaining treated as covered",
			remaining: -2,
			units:     []RentalUnit{{ID: 1, Capacity: 3}},
			want:      []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocations := AllocateQuantities(tt.remaining, tt.units, nil)
			require.Len(t, allocations, len(tt.want))
			for i, allocation := range allocations {
				assert.Equal(t, tt.units[i].ID, allocation.UnitID)
				assert.Equal(t, tt.want[i], allocation.Qty)
			}
		})
	}
}

func TestAllocateQuantities_NoDecrement(t *testing.T) {
	// remaining is compared against the original value for every unit,
	// so the second unit of the 10-person group also gets qty 6 and the
	// outcome does not depend on unit order
	units := []RentalUnit{{ID: 1, Capacity: 6}, {ID: 2, Capacity: 6}}

	allocations := AllocateQuantities(10, units, nil)

	require.Len(t, allocations, 2)
	assert.Equal(t, 6, allocations[0].Qty)
	assert.Equal(t, 6, allocations[1].Qty)

	reversed := AllocateQuantities(10, []RentalUnit{units[1], units[0]}, nil)
	assert.Equal(t, allocations[0].Qty, reversed[1].Qty)
	assert.Equal(t, allocations[1].Qty, reversed[0].Qty)
}

func TestAllocateQuantities_QtyNeverExceedsEffectiveCapacity(t *testing.T) {
	model := &ProductModel{QtyAccountingMethod: QtyAccountingAccommodation, Capacity: ptr.Ptr(4)}
	units := []RentalUnit{{ID: 1, Capacity: 8}, {ID: 2, Capacity: 2}}

	for _, remaining := range []int{0, 1, 3, 5, 20} {
		for _, allocation := range AllocateQuantities(remaining, units, model) {
			unit := units[0]
			if allocation.UnitID == 2 {
				unit = units[1]
			}
			assert.LessOrEqual(t, allocation.Qty, EffectiveCapacity(unit, model))
		}
	}
}
