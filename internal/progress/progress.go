// Package progress computes derived calendar views from checkin data. All
// functions are pure: they take an already-loaded date → habit → value map
// and hold no state of their own.
package progress

import (
	"math"
	"time"

	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/dates"
	"github.com/OneZee23/life-track/internal/models"
)

// Status classifies one day's values. With a habit filter only that habit's
// value is considered, so the result is never StatusPartial. A missing or
// empty value set is StatusNoData, which is not the same thing as every
// habit marked not-done.
func Status(day models.DayValues, habitFilter string) models.DayStatus {
	if len(day) == 0 {
		return models.StatusNoData
	}

	if habitFilter != "" {
		v, ok := day[habitFilter]
		if !ok {
			return models.StatusNoData
		}
		if v == 1 {
			return models.StatusAllDone
		}
		return models.StatusNoneDone
	}

	done := 0
	for _, v := range day {
		if v == 1 {
			done++
		}
	}
	switch {
	case done == len(day):
		return models.StatusAllDone
	case done > 0:
		return models.StatusPartial
	default:
		return models.StatusNoneDone
	}
}

// statusAt applies the future-date policy on top of Status: anything
// strictly after "now" is untrackable no-data, whatever the store holds.
func statusAt(date time.Time, data models.RangeValues, habitFilter string, now time.Time) models.DayStatus {
	if date.After(dates.Midnight(now)) {
		return models.StatusNoData
	}
	return Status(data[dates.Format(date)], habitFilter)
}

// Cell is one day of a calendar grid. Padding cells before the first and
// after the last day of the month have Day == 0.
type Cell struct {
	Day    int
	Date   string
	Status models.DayStatus
	Today  bool
}

// MonthSummary is the month heatmap plus its streak and completion numbers.
type MonthSummary struct {
	Year          int
	Month         time.Month
	Weeks         [][]Cell // rows of 7, Monday-first
	BestStreak    int
	CurrentStreak int
	TrackedDays   int
	DoneDays      int
}

// Month builds the calendar grid for a month and computes streaks over it.
//
// Done policy: with a habit filter a day counts when that habit's value is
// 1; otherwise a day counts when at least one habit is done. The streak
// counter resets on a not-done day, except that an untracked "today" never
// zeroes an otherwise-live run, and days after today are not walked at all.
// DoneDays counts all-done and partial days alike.
func Month(year int, month time.Month, data models.RangeValues, habitFilter string, now time.Time) MonthSummary {
	dim := dates.DaysInMonth(year, month)
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	today := dates.Midnight(now)

	cells := make([]Cell, 0, dim+13)
	for i := 0; i < dates.DayOfWeek(first); i++ {
		cells = append(cells, Cell{})
	}

	best, cur := 0, 0
	tracked, doneDays := 0, 0

	for d := 1; d <= dim; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, now.Location())
		status := statusAt(date, data, habitFilter, now)
		isToday := dates.SameDay(date, now)

		if status != models.StatusNoData {
			tracked++
			if status == models.StatusAllDone || status == models.StatusPartial {
				doneDays++
			}
		}

		// Walk the streak only through today; future days cannot break it
		if !date.After(today) {
			if isDone(status) {
				cur++
				if cur > best {
					best = cur
				}
			} else if !isToday {
				cur = 0
			}
		}

		cells = append(cells, Cell{
			Day:    d,
			Date:   dates.Format(date),
			Status: status,
			Today:  isToday,
		})
	}

	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}

	weeks := make([][]Cell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return MonthSummary{
		Year:          year,
		Month:         month,
		Weeks:         weeks,
		BestStreak:    best,
		CurrentStreak: cur,
		TrackedDays:   tracked,
		DoneDays:      doneDays,
	}
}

// isDone is the day-level streak policy: all-done or partial counts.
func isDone(status models.DayStatus) bool {
	return status == models.StatusAllDone || status == models.StatusPartial
}

// Week returns the seven cells of the week starting at the given Monday.
func Week(weekStart time.Time, data models.RangeValues, habitFilter string, now time.Time) []Cell {
	cells := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		cells = append(cells, Cell{
			Day:    date.Day(),
			Date:   dates.Format(date),
			Status: statusAt(date, data, habitFilter, now),
			Today:  dates.SameDay(date, now),
		})
	}
	return cells
}

// MonthPercent is one month's completion ratio inside a year view. Percent
// is nil when the month has no tracked days; "no data" must never be
// presented as 0%.
type MonthPercent struct {
	Month       time.Month
	TrackedDays int
	DoneDays    int
	Percent     *int
}

// YearSummary aggregates a whole year's completion per month.
type YearSummary struct {
	Year        int
	Months      []MonthPercent
	TrackedDays int
	DoneDays    int
	Percent     *int
}

// Year computes per-month and whole-year completion percentages. The done
// policy matches Month: all-done and partial days both count.
func Year(year int, data models.RangeValues, habitFilter string, now time.Time) YearSummary {
	summary := YearSummary{Year: year}

	for m := time.January; m <= time.December; m++ {
		ms := Month(year, m, data, habitFilter, now)
		mp := MonthPercent{
			Month:       m,
			TrackedDays: ms.TrackedDays,
			DoneDays:    ms.DoneDays,
			Percent:     percent(ms.DoneDays, ms.TrackedDays),
		}
		summary.Months = append(summary.Months, mp)
		summary.TrackedDays += ms.TrackedDays
		summary.DoneDays += ms.DoneDays
	}

	summary.Percent = percent(summary.DoneDays, summary.TrackedDays)
	return summary
}

func percent(done, tracked int) *int {
	if tracked == 0 {
		return nil
	}
	p := int(math.Round(float64(done) / float64(tracked) * 100))
	return &p
}

// Streak counts consecutive done days ending at the most recent trackable
// day. Today extends the run when saved but never breaks it when absent;
// the walk otherwise proceeds backwards from yesterday, capped at the
// lookback window.
func Streak(data models.RangeValues, now time.Time) int {
	streak := 0

	if anyDone(data[dates.Format(now)]) {
		streak++
	}

	d := dates.Midnight(now).AddDate(0, 0, -1)
	for streak < constants.StreakLookbackDays {
		if !anyDone(data[dates.Format(d)]) {
			break
		}
		streak++
		d = d.AddDate(0, 0, -1)
	}

	return streak
}

func anyDone(day models.DayValues) bool {
	for _, v := range day {
		if v == 1 {
			return true
		}
	}
	return false
}
