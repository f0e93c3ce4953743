package domain

import "github.com/campora/PMS-SchedulerService/pkg/types"

// TimeSlot is a named period of a day with a stable code. Immutable
// reference data shared by every calendar day.
type TimeSlot struct {
	Code         string
	Name         string
	ScheduleFrom types.TimeOfDay
	ScheduleTo   types.TimeOfDay
}

// DurationSeconds returns the full wall-clock length of the slot
func (s *TimeSlot) DurationSeconds() int {
	return s.ScheduleTo.Sub(s.ScheduleFrom)
}

// Contains returns true if [from, to) lies within the slot bounds
func (s *TimeSlot) Contains(from, to types.TimeOfDay) bool {
	return !from.IsBefore(s.ScheduleFrom) && !to.IsAfter(s.ScheduleTo)
}
