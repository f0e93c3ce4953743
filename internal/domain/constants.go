package domain

// Time format constants
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD, UTC calendar-day keys
	MonthKeyFormat = "2006-01"    // YYYY-MM, header grouping keys
)

// UnassignedAgentID is the synthetic bucket for activities without an agent
const UnassignedAgentID int64 = 0

// Quantity accounting methods of a product model
const (
	QtyAccountingAccommodation = "accommodation"
	QtyAccountingPerson        = "person"
)

// Grid display defaults
const (
	DefaultDurationDays = 31
	MaxDurationDays     = 92
)

// DropZonePosition hints where a dragged activity is inserted inside the
// target cell. Exclusive activities are always forced to DropZoneCenter.
type DropZonePosition string

const (
	DropZoneLeft   DropZonePosition = "left"
	DropZoneCenter DropZonePosition = "center"
	DropZoneRight  DropZonePosition = "right"
)

// ValidDropZonePosition reports whether p is one of the known positions
func ValidDropZonePosition(p DropZonePosition) bool {
	return p == DropZoneLeft || p == DropZoneCenter || p == DropZoneRight
}
