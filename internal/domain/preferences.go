package domain

import "time"

// DisplayPreferences are the persisted per-user navbar/grid filter
// settings. They replace what the legacy planner kept in browser-local
// storage; the grid applies them whenever a request omits explicit
// filters.
type DisplayPreferences struct {
	ID     int64
	UserID int64

	// Relationship restricts the agent rows shown; nil shows all agents
	Relationship *Relationship

	// SkillFilterEnabled turns capability matching on for droppability
	// checks and agent filtering
	SkillFilterEnabled bool

	// VisibleSlotCodes restricts the time-slot columns; empty shows all
	VisibleSlotCodes []string

	// DurationDays is the preferred display window length
	DurationDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultDisplayPreferences returns the settings applied for users who
// never saved any
func DefaultDisplayPreferences(userID int64) *DisplayPreferences {
	return &DisplayPreferences{
		UserID:       userID,
		DurationDays: DefaultDurationDays,
	}
}

// ShowsRelationship returns true if agents with the given relationship
// pass the filter
func (p *DisplayPreferences) ShowsRelationship(r Relationship) bool {
	return p.Relationship == nil || *p.Relationship == r
}

// ShowsSlot returns true if the slot column passes the filter
func (p *DisplayPreferences) ShowsSlot(code string) bool {
	if len(p.VisibleSlotCodes) == 0 {
		return true
	}
	for _, visible := range p.VisibleSlotCodes {
		if visible == code {
			return true
		}
	}
	return false
}
