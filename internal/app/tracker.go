// Package app holds the application service layer between the UI surfaces
// and the store. A single Tracker is constructed at process start and
// passed to every consumer; there is no ambient database handle.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/dates"
	"github.com/OneZee23/life-track/internal/logger"
	"github.com/OneZee23/life-track/internal/models"
	"github.com/OneZee23/life-track/internal/progress"
	"github.com/OneZee23/life-track/internal/storage"
	"github.com/OneZee23/life-track/internal/validation"
)

// Tracker owns the in-memory projections the calendar views read: the
// active and full habit lists and the date → habit → value map hydrated
// from range queries. The store owns all persisted rows.
type Tracker struct {
	store     storage.Provider
	habits    []models.Habit
	allHabits []models.HabitRecord
	data      models.RangeValues

	// nowFn is swapped in tests to pin the clock
	nowFn func() time.Time
}

// New builds a Tracker over an initialized store and hydrates the habit
// lists.
func New(store storage.Provider) (*Tracker, error) {
	t := &Tracker{
		store: store,
		data:  models.RangeValues{},
		nowFn: time.Now,
	}
	if err := t.reloadHabits(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tracker) reloadHabits() error {
	habits, err := t.store.GetActiveHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	allHabits, err := t.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habit history: %w", err)
	}
	t.habits = habits
	t.allHabits = allHabits
	return nil
}

// ActiveHabits returns the active habits in sort order.
func (t *Tracker) ActiveHabits() []models.Habit {
	return t.habits
}

// AllHabits returns every habit ever created, deleted ones flagged, for
// history views.
func (t *Tracker) AllHabits() []models.HabitRecord {
	return t.allHabits
}

// AddHabit creates a new habit at the end of the active list. The active
// count ceiling is enforced here, not in the store.
func (t *Tracker) AddHabit(name, emoji string) (models.Habit, error) {
	if err := validation.HabitName(name); err != nil {
		return models.Habit{}, err
	}
	if err := validation.Emoji(emoji); err != nil {
		return models.Habit{}, err
	}
	if len(t.habits) >= constants.MaxHabits {
		return models.Habit{}, fmt.Errorf("cannot add habit: limit of %d active habits reached", constants.MaxHabits)
	}

	h, err := t.store.InsertHabit(name, emoji, len(t.habits))
	if err != nil {
		return models.Habit{}, err
	}

	t.habits = append(t.habits, h)
	t.allHabits = append(t.allHabits, models.HabitRecord{Habit: h})
	logger.Info("habit added", "id", h.ID, "name", h.Name)
	return h, nil
}

// UpdateHabit applies a partial rename/re-emoji and refreshes the caches.
func (t *Tracker) UpdateHabit(id string, patch models.HabitPatch) error {
	if patch.Name != nil {
		if err := validation.HabitName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Emoji != nil {
		if err := validation.Emoji(*patch.Emoji); err != nil {
			return err
		}
	}

	if err := t.store.UpdateHabit(id, patch); err != nil {
		return err
	}
	return t.reloadHabits()
}

// RemoveHabit soft-deletes: the habit leaves the active list but keeps its
// row and all of its history.
func (t *Tracker) RemoveHabit(id string) error {
	if err := t.store.DeleteHabit(id); err != nil {
		return err
	}
	logger.Info("habit soft-deleted", "id", id)

	// Re-pack the remaining active habits so sort orders stay dense
	remaining := make([]string, 0, len(t.habits))
	for _, h := range t.habits {
		if h.ID != id {
			remaining = append(remaining, h.ID)
		}
	}
	if err := t.store.ReorderHabits(remaining); err != nil {
		return err
	}

	return t.reloadHabits()
}

// MoveHabit moves the habit at fromIndex to toIndex in the active list.
// The cached projection is updated optimistically and restored from a
// snapshot if the durable write fails.
func (t *Tracker) MoveHabit(fromIndex, toIndex int) error {
	if fromIndex < 0 || fromIndex >= len(t.habits) || toIndex < 0 || toIndex >= len(t.habits) {
		return fmt.Errorf("invalid reorder indices %d -> %d", fromIndex, toIndex)
	}
	if fromIndex == toIndex {
		return nil
	}

	prev := make([]models.Habit, len(t.habits))
	copy(prev, t.habits)

	reordered := make([]models.Habit, 0, len(t.habits))
	reordered = append(reordered, t.habits[:fromIndex]...)
	reordered = append(reordered, t.habits[fromIndex+1:]...)
	reordered = append(reordered[:toIndex], append([]models.Habit{prev[fromIndex]}, reordered[toIndex:]...)...)

	ids := make([]string, len(reordered))
	for i := range reordered {
		reordered[i].SortOrder = i
		ids[i] = reordered[i].ID
	}

	t.habits = reordered
	if err := t.store.ReorderHabits(ids); err != nil {
		t.habits = prev
		return fmt.Errorf("reorder failed, previous order restored: %w", err)
	}

	return t.reloadHabits()
}

// LoadDate hydrates and returns one day's values.
func (t *Tracker) LoadDate(date string) (models.DayValues, error) {
	if err := validation.Date(date); err != nil {
		return nil, err
	}
	values, err := t.store.GetCheckinsForDate(date)
	if err != nil {
		return nil, err
	}
	t.data[date] = values
	return values, nil
}

// LoadDateRange hydrates the projection for an inclusive date range in one
// round trip.
func (t *Tracker) LoadDateRange(from, to string) error {
	if err := validation.Date(from); err != nil {
		return err
	}
	if err := validation.Date(to); err != nil {
		return err
	}
	rangeData, err := t.store.GetCheckinsForDateRange(from, to)
	if err != nil {
		return err
	}
	for date, values := range rangeData {
		t.data[date] = values
	}
	return nil
}

// Toggle flips one habit's value for a date in the in-memory projection
// only; SaveDay makes the day durable.
func (t *Tracker) Toggle(date, habitID string) {
	day := t.data[date]
	if day == nil {
		day = models.DayValues{}
		t.data[date] = day
	}
	if day[habitID] == 1 {
		day[habitID] = 0
	} else {
		day[habitID] = 1
	}
}

// SaveDay persists a complete value set for a date in one transaction.
// Every active habit must have an entry; the UI submits whole days, never
// partial ones.
func (t *Tracker) SaveDay(date string, values map[string]bool) error {
	if err := validation.WritableDate(date, t.nowFn()); err != nil {
		return err
	}
	for _, h := range t.habits {
		if _, ok := values[h.ID]; !ok {
			return fmt.Errorf("incomplete day: missing value for habit %q", h.Name)
		}
	}

	checkins := models.DayValues{}
	for habitID, done := range values {
		v := 0
		if done {
			v = 1
		}
		checkins[habitID] = v
	}

	if err := t.store.BatchUpsertCheckins(date, checkins); err != nil {
		return err
	}

	t.data[date] = checkins
	logger.Debug("day saved", "date", date, "habits", len(checkins))
	return nil
}

// DayStatus classifies a date from the hydrated projection, with the
// future-date policy applied.
func (t *Tracker) DayStatus(date string, habitFilter string) (models.DayStatus, error) {
	d, err := dates.Parse(date)
	if err != nil {
		return models.StatusNoData, err
	}
	if d.After(dates.Midnight(t.nowFn())) {
		return models.StatusNoData, nil
	}
	return progress.Status(t.data[date], habitFilter), nil
}

// MonthSummary loads the month's checkins and computes its calendar view.
func (t *Tracker) MonthSummary(year int, month time.Month, habitFilter string) (progress.MonthSummary, error) {
	from := dates.Format(time.Date(year, month, 1, 0, 0, 0, 0, time.Local))
	to := dates.Format(time.Date(year, month, dates.DaysInMonth(year, month), 0, 0, 0, 0, time.Local))
	if err := t.LoadDateRange(from, to); err != nil {
		return progress.MonthSummary{}, err
	}
	return progress.Month(year, month, t.data, habitFilter, t.nowFn()), nil
}

// YearSummary loads the year's checkins and computes per-month completion.
func (t *Tracker) YearSummary(year int, habitFilter string) (progress.YearSummary, error) {
	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)
	if err := t.LoadDateRange(from, to); err != nil {
		return progress.YearSummary{}, err
	}
	return progress.Year(year, t.data, habitFilter, t.nowFn()), nil
}

// Streak loads the lookback window and returns the live run of done days.
func (t *Tracker) Streak() (int, error) {
	now := t.nowFn()
	from := dates.Format(now.AddDate(0, 0, -constants.StreakLookbackDays))
	if err := t.LoadDateRange(from, dates.Format(now)); err != nil {
		return 0, err
	}
	return progress.Streak(t.data, now), nil
}

// Theme returns the stored theme preference, defaulting when unset.
func (t *Tracker) Theme() (string, error) {
	theme, err := t.store.GetPreference(constants.PrefTheme)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return constants.DefaultTheme, nil
		}
		return "", err
	}
	return theme, nil
}

// SetTheme stores the theme preference.
func (t *Tracker) SetTheme(theme string) error {
	if err := validation.Theme(theme); err != nil {
		return err
	}
	return t.store.SetPreference(constants.PrefTheme, theme)
}

// DeviceID returns the identifier generated at first launch, reserved for
// future sync.
func (t *Tracker) DeviceID() (string, error) {
	return t.store.GetPreference(constants.PrefDeviceID)
}

// Store exposes the underlying provider for diagnostics commands.
func (t *Tracker) Store() storage.Provider {
	return t.store
}
