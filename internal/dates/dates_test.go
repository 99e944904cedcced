package dates

import (
	"testing"
	"time"
)

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{
			name: "ordinary date",
			date: "2025-03-15",
		},
		{
			name: "leap day",
			date: "2024-02-29",
		},
		{
			name: "year boundary",
			date: "2024-12-31",
		},
		{
			name: "start of year",
			date: "2025-01-01",
		},
		{
			name: "month boundary",
			date: "2025-04-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.date)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.date, err)
			}
			if got := Format(parsed); got != tt.date {
				t.Errorf("Format(Parse(%q)) = %q, want %q", tt.date, got, tt.date)
			}
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "empty string", date: ""},
		{name: "wrong separator", date: "2025/03/15"},
		{name: "missing day", date: "2025-03"},
		{name: "not a date", date: "tomorrow"},
		{name: "invalid day", date: "2025-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.date); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.date)
			}
		})
	}
}

func TestDayOfWeekMondayFirst(t *testing.T) {
	// 2025-03-03 is a Monday
	tests := []struct {
		date string
		want int
	}{
		{date: "2025-03-03", want: 0}, // Monday
		{date: "2025-03-04", want: 1},
		{date: "2025-03-05", want: 2},
		{date: "2025-03-06", want: 3},
		{date: "2025-03-07", want: 4},
		{date: "2025-03-08", want: 5}, // Saturday
		{date: "2025-03-09", want: 6}, // Sunday
	}

	for _, tt := range tests {
		d, err := Parse(tt.date)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.date, err)
		}
		if got := DayOfWeek(d); got != tt.want {
			t.Errorf("DayOfWeek(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "monday maps to itself", date: "2025-03-03", want: "2025-03-03"},
		{name: "midweek", date: "2025-03-05", want: "2025-03-03"},
		{name: "sunday maps back six days", date: "2025-03-09", want: "2025-03-03"},
		{name: "crosses month boundary", date: "2025-03-01", want: "2025-02-24"},
		{name: "crosses year boundary", date: "2025-01-01", want: "2024-12-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.date)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.date, err)
			}
			ws := WeekStart(d)
			if got := Format(ws); got != tt.want {
				t.Errorf("WeekStart(%s) = %s, want %s", tt.date, got, tt.want)
			}
			if DayOfWeek(ws) != 0 {
				t.Errorf("WeekStart(%s) is not a Monday", tt.date)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{year: 2025, month: time.January, want: 31},
		{year: 2025, month: time.February, want: 28},
		{year: 2024, month: time.February, want: 29},
		{year: 2025, month: time.April, want: 30},
		{year: 2025, month: time.December, want: 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 5, 1, 0, 0, 0, time.Local)
	b := time.Date(2025, 3, 5, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 3, 6, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected same-day times to match")
	}
	if SameDay(a, c) {
		t.Error("expected different days not to match")
	}
}
