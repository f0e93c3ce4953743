package domain

import (
	"errors"
	"fmt"

	"github.com/campora/PMS-SchedulerService/pkg/types"
)

var (
	// ErrInvalidWindow is returned when scheduleFrom is not before scheduleTo
	ErrInvalidWindow = errors.New("domain: schedule window is empty or inverted")

	// ErrInvalidParts is returned when a split into fewer than 1 part is requested
	ErrInvalidParts = errors.New("domain: split requires at least one part")
)

// ScheduleWindow is a [From, To) wall-clock interval within one day
type ScheduleWindow struct {
	From types.TimeOfDay
	To   types.TimeOfDay
}

// DurationSeconds returns the window length
func (w ScheduleWindow) DurationSeconds() int {
	return w.To.Sub(w.From)
}

// SplitWindow divides [from, to) into n contiguous equal-length
// sub-intervals in ascending order. When the duration is not evenly
// divisible by n, the remainder seconds go to the final interval, so the
// result is a total deterministic mapping: the sub-intervals are
// non-overlapping and their union is exactly [from, to).
func SplitWindow(from, to types.TimeOfDay, n int) ([]ScheduleWindow, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidParts, n)
	}
	if !from.IsBefore(to) {
		return nil, fmt.Errorf("%w: from=%s to=%s", ErrInvalidWindow, from, to)
	}

	duration := to.Sub(from)
	step := duration / n

	windows := make([]ScheduleWindow, n)
	cursor := from
	for i := 0; i < n; i++ {
		next, err := cursor.AddSeconds(step)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		if i == n-1 {
			next = to
		}
		windows[i] = ScheduleWindow{From: cursor, To: next}
		cursor = next
	}
	return windows, nil
}
