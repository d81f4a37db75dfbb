package planning

import (
	"strings"
	"time"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// MonthBounds resolves a "YYYY-MM" selector into the first and last calendar
// day of that month. ok is false for unparseable input; callers degrade to
// empty results rather than erroring.
func MonthBounds(yearMonth string) (first, last time.Time, ok bool) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(yearMonth))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last, true
}

// ParseDay parses a "YYYY-MM-DD" calendar date into midnight UTC.
func ParseDay(day string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(day))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DayKey formats a date the way overuse maps are keyed.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// contains reports whether day falls inside the project's inclusive
// [start, end] range. Projects missing either date never match.
func contains(day time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return !day.Before(*start) && !day.After(*end)
}
