package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in "2006-01-02" form, UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar date; empty string for the zero time so
// callers can decide how to display missing dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DaysBetweenInclusive counts calendar days from start to end, both ends
// included. A same-day trip counts as 1.
func DaysBetweenInclusive(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	return int(e.Sub(s).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
