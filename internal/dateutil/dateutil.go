package dateutil

import (
	"fmt"
	"time"

	"dayboard/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) from the local wall clock.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// MonthName returns the English month name for a zero-based month index.
// It returns an error for indices outside 0..11.
func MonthName(monthIndex int) (string, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return "", fmt.Errorf("month index out of range: %d", monthIndex)
	}
	return time.Month(monthIndex + 1).String(), nil
}

// DaysInMonth returns the number of days in the given month (zero-based
// index), accounting for leap years.
func DaysInMonth(year, monthIndex int) int {
	// Day 0 of the next month normalizes to the last day of this month.
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday (Sunday=0) of day 1 of the given month
// (zero-based index).
func FirstWeekday(year, monthIndex int) int {
	return int(time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// DaysBetween returns the number of calendar days from a to b. Both must be
// YYYY-MM-DD strings; malformed input yields 0, false.
func DaysBetween(a, b string) (int, bool) {
	ta, err := ParseDay(a)
	if err != nil {
		return 0, false
	}
	tb, err := ParseDay(b)
	if err != nil {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}

// DayString formats a (year, zero-based month, day) triple as YYYY-MM-DD.
func DayString(year, monthIndex, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, monthIndex+1, day)
}
