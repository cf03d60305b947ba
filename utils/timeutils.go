package utils

import (
	"time"
)

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 24 * 60

// MinutesSinceMidnight returns the wall-clock minute-of-day for t, ignoring
// the date component.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinutesAsClock formats a minute-of-day value as a 12-hour clock
// string, e.g. 510 -> "8:30 AM". Values outside [0,1439) wrap.
func FormatMinutesAsClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	t := time.Date(0, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
