package domain

import "time"

// CalendarDay is a single column of the scheduling grid
type CalendarDay struct {
	Date time.Time
	Key  string // UTC calendar-day key, YYYY-MM-DD
}

// MonthGroup groups consecutive days of one month for header rendering
type MonthGroup struct {
	Key  string // YYYY-MM
	Days []CalendarDay
}

// Calendar is the date axis of the grid for one display window
type Calendar struct {
	DateFrom time.Time
	Days     []CalendarDay
	Months   []MonthGroup
}

// DateKey converts an instant to its UTC calendar-day key. The offset of
// the local representation is stripped first, so a given instant maps to
// the same key regardless of the viewer's timezone.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// BuildCalendar derives the ordered day list and month grouping for a
// display window of durationInDays days starting at dateFrom. Runs in
// O(days) and is idempotent.
func BuildCalendar(dateFrom time.Time, durationInDays int) Calendar {
	start := dateFrom.UTC().Truncate(24 * time.Hour)

	days := make([]CalendarDay, 0, durationInDays)
	months := make([]MonthGroup, 0, durationInDays/28+2)

	for i := 0; i < durationInDays; i++ {
		date := start.AddDate(0, 0, i)
		day := CalendarDay{Date: date, Key: date.Format(DateFormat)}
		days = append(days, day)

		monthKey := date.Format(MonthKeyFormat)
		if len(months) == 0 || months[len(months)-1].Key != monthKey {
			months = append(months, MonthGroup{Key: monthKey})
		}
		last := len(months) - 1
		months[last].Days = append(months[last].Days, day)
	}

	return Calendar{DateFrom: start, Days: days, Months: months}
}

// DayIndex returns the position of a date key within the window, or -1
// if the key is outside the window
func (c *Calendar) DayIndex(dateKey string) int {
	for i, day := range c.Days {
		if day.Key == dateKey {
			return i
		}
	}
	return -1
}

// ContainsDay returns true if the date key falls inside the window
func (c *Calendar) ContainsDay(dateKey string) bool {
	return c.DayIndex(dateKey) >= 0
}
