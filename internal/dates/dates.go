package dates

import (
	"fmt"
	"time"

	"github.com/OneZee23/life-track/internal/constants"
)

// Format serializes a date as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.Format(constants.DateFormat)
}

// Parse parses a YYYY-MM-DD string as midnight in the local timezone.
// Malformed input is rejected outright rather than coerced to an epoch date.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// DayOfWeek returns the Monday-based weekday index: 0=Monday .. 6=Sunday.
// Weeks are grouped Monday-first everywhere in the application.
func DayOfWeek(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// WeekStart returns the Monday on or before the given date, at midnight in
// the date's location.
func WeekStart(d time.Time) time.Time {
	d = Midnight(d)
	return d.AddDate(0, 0, -DayOfWeek(d))
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether the given time falls on the current day.
func IsToday(d time.Time) bool {
	return SameDay(d, time.Now())
}

// Today returns the current date as a YYYY-MM-DD string.
func Today() string {
	return Format(time.Now())
}

// Yesterday returns yesterday's date as a YYYY-MM-DD string.
func Yesterday() string {
	return Format(time.Now().AddDate(0, 0, -1))
}
