package domain

import (
	"time"

	"github.com/campora/PMS-SchedulerService/pkg/types"
)

// Activity is a schedulable unit of work tied to one calendar day and one
// time slot, requiring zero-or-one agent. ScheduleFrom/ScheduleTo start out
// equal to the slot bounds and shrink to a sub-interval when the activity
// shares its slot with others.
type Activity struct {
	ID           int64
	Name         string
	ActivityDate time.Time
	TimeSlotCode string
	ScheduleFrom types.TimeOfDay
	ScheduleTo   types.TimeOfDay

	// IsExclusive activities may not share a cell with any other activity
	IsExclusive bool

	HasStaffRequired    bool
	HasProviderRequired bool

	// RequiredProductModelID is the skill/equipment the assigned agent
	// must be capable of
	RequiredProductModelID int64

	// AgentID is 0 when the activity is unassigned
	AgentID int64

	// ProviderIDs are the currently linked external suppliers; rewritten
	// when the activity is assigned to a provider
	ProviderIDs []int64

	// IsPartnerEvent marks a non-activity calendar marker. Partner events
	// occupy cells but are never reassigned between agents.
	IsPartnerEvent bool
}

// IsAssigned returns true if the activity has an agent
func (a *Activity) IsAssigned() bool {
	return a.AgentID != UnassignedAgentID
}

// DateKey returns the UTC calendar-day key of the activity
func (a *Activity) DateKey() string {
	return DateKey(a.ActivityDate)
}

// Cell returns the cell key the activity currently occupies
func (a *Activity) Cell() CellKey {
	return CellKey{
		AgentID:  a.AgentID,
		DateKey:  a.DateKey(),
		SlotCode: a.TimeSlotCode,
	}
}

// HasProvider returns true if the given provider is already linked
func (a *Activity) HasProvider(providerID int64) bool {
	for _, id := range a.ProviderIDs {
		if id == providerID {
			return true
		}
	}
	return false
}
