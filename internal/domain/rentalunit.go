package domain

// RentalUnit is an accommodation resource with a maximum occupant
// capacity. Read-only reference data during allocation.
type RentalUnit struct {
	ID       int64
	Name     string
	Capacity int

	// ParentID is set when the unit is a sub-unit of a larger one
	ParentID *int64
}

// ProductModel is the product-level reference data consulted during
// allocation and provider eligibility checks
type ProductModel struct {
	ID                  int64
	Name                string
	QtyAccountingMethod string
	Capacity            *int
	ProviderIDs         []int64
}

// UnitAllocation is one computed (unit, qty) pair of an allocation run
type UnitAllocation struct {
	UnitID int64
	Qty    int
}

// EffectiveCapacity returns the occupant capacity actually usable for a
// unit: the unit capacity, or the lower of unit and product-model
// capacity when the product accounts quantities per accommodation and
// enforces a stricter cap.
func EffectiveCapacity(unit RentalUnit, model *ProductModel) int {
	capacity := unit.Capacity
	if model != nil && model.QtyAccountingMethod == QtyAccountingAccommodation &&
		model.Capacity != nil && *model.Capacity < capacity {
		capacity = *model.Capacity
	}
	return capacity
}

// AllocateQuantities computes one (unit, qty) pair per selected unit for
// a group still needing `remaining` occupants.
//
// While remaining is positive each unit gets min(remaining,
// effectiveCapacity); once the requirement is covered (or was already
// non-positive on entry) every further unit gets its full effective
// capacity. `remaining` is deliberately evaluated against the original
// value for every unit rather than decremented as units are processed:
// we allow the assigned total to be above the strict required capacity,
// which keeps the outcome independent of unit processing order.
func AllocateQuantities(remaining int, units []RentalUnit, model *ProductModel) []UnitAllocation {
	allocations := make([]UnitAllocation, 0, len(units))
	for _, unit := range units {
		capacity := EffectiveCapacity(unit, model)
		qty := capacity
		if remaining > 0 && remaining < capacity {
			qty = remaining
		}
		allocations = append(allocations, UnitAllocation{UnitID: unit.ID, Qty: qty})
	}
	return allocations
}
