package models

// Checkin rows live only in the database; at most one exists per
// (habit, date) and re-saving a day overwrites in place. The query API
// returns them pre-grouped as the value maps below.

// DayValues maps habit ID to that habit's 0/1 value for a single date.
type DayValues map[string]int

// RangeValues maps date (YYYY-MM-DD) to the day's values, as returned by a
// range query.
type RangeValues map[string]DayValues
