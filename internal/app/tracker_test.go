package app

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/models"
	"github.com/OneZee23/life-track/internal/storage"
)

func setupTracker(t *testing.T) *Tracker {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	tracker, err := New(store)
	if err != nil {
		t.Fatalf("failed to build tracker: %v", err)
	}
	// Pin the clock so "today" is stable
	tracker.nowFn = func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	}
	return tracker
}

func TestAddHabitEnforcesLimit(t *testing.T) {
	tracker := setupTracker(t)

	for i := len(tracker.ActiveHabits()); i < constants.MaxHabits; i++ {
		if _, err := tracker.AddHabit(fmt.Sprintf("Habit %d", i), "🎯"); err != nil {
			t.Fatalf("AddHabit %d failed: %v", i, err)
		}
	}

	if _, err := tracker.AddHabit("One too many", "🎯"); err == nil {
		t.Error("expected AddHabit to fail at the active-habit limit")
	}
}

func TestAddHabitValidatesName(t *testing.T) {
	tracker := setupTracker(t)

	if _, err := tracker.AddHabit("", "🎯"); err == nil {
		t.Error("expected empty name to be rejected")
	}
	if _, err := tracker.AddHabit("this name is far too long to fit", "🎯"); err == nil {
		t.Error("expected over-limit name to be rejected")
	}
}

func TestSaveDayRequiresCompleteValueSet(t *testing.T) {
	tracker := setupTracker(t)

	habits := tracker.ActiveHabits()
	values := map[string]bool{}
	for _, h := range habits[:len(habits)-1] {
		values[h.ID] = true
	}

	if err := tracker.SaveDay("2025-03-10", values); err == nil {
		t.Error("expected SaveDay to reject a partial value set")
	}

	values[habits[len(habits)-1].ID] = false
	if err := tracker.SaveDay("2025-03-10", values); err != nil {
		t.Errorf("SaveDay with complete values failed: %v", err)
	}
}

func TestSaveDayRejectsFutureDate(t *testing.T) {
	tracker := setupTracker(t)

	values := map[string]bool{}
	for _, h := range tracker.ActiveHabits() {
		values[h.ID] = true
	}

	if err := tracker.SaveDay("2025-03-11", values); err == nil {
		t.Error("expected SaveDay to reject a future date")
	}
}

func TestSaveDayRoundTrip(t *testing.T) {
	tracker := setupTracker(t)

	habits := tracker.ActiveHabits()
	values := map[string]bool{}
	for i, h := range habits {
		values[h.ID] = i%2 == 0
	}

	if err := tracker.SaveDay("2025-03-09", values); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	loaded, err := tracker.LoadDate("2025-03-09")
	if err != nil {
		t.Fatalf("LoadDate failed: %v", err)
	}
	for i, h := range habits {
		want := 0
		if i%2 == 0 {
			want = 1
		}
		if loaded[h.ID] != want {
			t.Errorf("habit %s: loaded %d, want %d", h.Name, loaded[h.ID], want)
		}
	}
}

func TestToggleIsInMemoryOnly(t *testing.T) {
	tracker := setupTracker(t)

	h := tracker.ActiveHabits()[0]
	tracker.Toggle("2025-03-09", h.ID)

	status, err := tracker.DayStatus("2025-03-09", h.ID)
	if err != nil {
		t.Fatalf("DayStatus failed: %v", err)
	}
	if status != models.StatusAllDone {
		t.Errorf("expected toggled habit to read done in-memory, got %v", status)
	}

	// Nothing was persisted
	persisted, err := tracker.Store().GetCheckinsForDate("2025-03-09")
	if err != nil {
		t.Fatalf("GetCheckinsForDate failed: %v", err)
	}
	if len(persisted) != 0 {
		t.Errorf("Toggle persisted %d rows, want 0", len(persisted))
	}
}

func TestMoveHabit(t *testing.T) {
	tracker := setupTracker(t)

	before := tracker.ActiveHabits()
	a, b, c := before[0], before[1], before[2]

	// Move the third habit to the front
	if err := tracker.MoveHabit(2, 0); err != nil {
		t.Fatalf("MoveHabit failed: %v", err)
	}

	after := tracker.ActiveHabits()
	if after[0].ID != c.ID || after[1].ID != a.ID || after[2].ID != b.ID {
		t.Errorf("unexpected order: [%s %s %s]", after[0].Name, after[1].Name, after[2].Name)
	}
	for i, h := range after {
		if h.SortOrder != i {
			t.Errorf("sort orders not dense after move: %d at position %d", h.SortOrder, i)
		}
	}
}

func TestRemoveHabitKeepsOrdersDense(t *testing.T) {
	tracker := setupTracker(t)

	before := tracker.ActiveHabits()
	removed := before[1]

	if err := tracker.RemoveHabit(removed.ID); err != nil {
		t.Fatalf("RemoveHabit failed: %v", err)
	}

	after := tracker.ActiveHabits()
	if len(after) != len(before)-1 {
		t.Fatalf("expected %d active habits, got %d", len(before)-1, len(after))
	}
	for i, h := range after {
		if h.SortOrder != i {
			t.Errorf("sort order gap after removal: %d at position %d", h.SortOrder, i)
		}
		if h.ID == removed.ID {
			t.Error("removed habit still active")
		}
	}

	// Still visible in the full list, flagged deleted
	found := false
	for _, r := range tracker.AllHabits() {
		if r.ID == removed.ID {
			found = true
			if !r.Deleted() {
				t.Error("removed habit not flagged deleted")
			}
		}
	}
	if !found {
		t.Error("removed habit missing from AllHabits")
	}
}

func TestStreakAfterSaves(t *testing.T) {
	tracker := setupTracker(t)

	habits := tracker.ActiveHabits()
	allDone := map[string]bool{}
	for _, h := range habits {
		allDone[h.ID] = true
	}

	for _, d := range []string{"2025-03-07", "2025-03-08", "2025-03-09"} {
		if err := tracker.SaveDay(d, allDone); err != nil {
			t.Fatalf("SaveDay(%s) failed: %v", d, err)
		}
	}

	// Today (03-10) untracked: the run still stands
	streak, err := tracker.Streak()
	if err != nil {
		t.Fatalf("Streak failed: %v", err)
	}
	if streak != 3 {
		t.Errorf("Streak = %d, want 3", streak)
	}
}

func TestMonthSummaryThroughTracker(t *testing.T) {
	tracker := setupTracker(t)

	habits := tracker.ActiveHabits()
	allDone := map[string]bool{}
	noneDone := map[string]bool{}
	for _, h := range habits {
		allDone[h.ID] = true
		noneDone[h.ID] = false
	}

	if err := tracker.SaveDay("2025-03-01", allDone); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}
	if err := tracker.SaveDay("2025-03-02", noneDone); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	ms, err := tracker.MonthSummary(2025, time.March, "")
	if err != nil {
		t.Fatalf("MonthSummary failed: %v", err)
	}
	if ms.TrackedDays != 2 {
		t.Errorf("TrackedDays = %d, want 2", ms.TrackedDays)
	}
	if ms.DoneDays != 1 {
		t.Errorf("DoneDays = %d, want 1", ms.DoneDays)
	}
}

func TestThemeDefaultsWhenUnset(t *testing.T) {
	tracker := setupTracker(t)

	theme, err := tracker.Theme()
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if theme != constants.DefaultTheme {
		t.Errorf("Theme = %q, want default %q", theme, constants.DefaultTheme)
	}

	if err := tracker.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	theme, _ = tracker.Theme()
	if theme != "dark" {
		t.Errorf("Theme = %q after SetTheme, want dark", theme)
	}

	if err := tracker.SetTheme("sepia"); err == nil {
		t.Error("expected invalid theme to be rejected")
	}
}

func TestDeviceIDGenerated(t *testing.T) {
	tracker := setupTracker(t)

	id, err := tracker.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID failed: %v", err)
	}
	if id == "" {
		t.Error("DeviceID is empty")
	}
}
