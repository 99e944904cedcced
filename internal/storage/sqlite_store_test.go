package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/models"
)

func patchName(name string) models.HabitPatch {
	return models.HabitPatch{Name: &name}
}

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestInitSeedsDefaultHabits(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("GetActiveHabits failed: %v", err)
	}

	if len(habits) != len(constants.DefaultHabits) {
		t.Fatalf("expected %d seeded habits, got %d", len(constants.DefaultHabits), len(habits))
	}

	for i, h := range habits {
		if h.Name != constants.DefaultHabits[i].Name {
			t.Errorf("habit %d: expected name %q, got %q", i, constants.DefaultHabits[i].Name, h.Name)
		}
		if h.SortOrder != i {
			t.Errorf("habit %d: expected sort_order %d, got %d", i, i, h.SortOrder)
		}
		if h.ID == "" {
			t.Errorf("habit %d has empty id", i)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}

	deviceID, err := store.GetPreference(constants.PrefDeviceID)
	if err != nil {
		t.Fatalf("device id not generated: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening must not reseed, regenerate, or migrate anything
	store = NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer store.Close()

	var version int
	if err := store.GetDB().QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != 3 {
		t.Errorf("expected schema version 3, got %d", version)
	}

	habits, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("GetActiveHabits failed: %v", err)
	}
	if len(habits) != len(constants.DefaultHabits) {
		t.Errorf("expected %d habits after re-init, got %d (duplicate seed?)", len(constants.DefaultHabits), len(habits))
	}

	deviceID2, err := store.GetPreference(constants.PrefDeviceID)
	if err != nil {
		t.Fatalf("device id lost after re-init: %v", err)
	}
	if deviceID2 != deviceID {
		t.Errorf("device id changed across restarts: %q vs %q", deviceID, deviceID2)
	}
}

func TestInsertAndUpdateHabit(t *testing.T) {
	store := setupTestSQLiteStore(t)

	h, err := store.InsertHabit("Reading", "📖", 5)
	if err != nil {
		t.Fatalf("InsertHabit failed: %v", err)
	}
	if h.ID == "" {
		t.Fatal("InsertHabit returned empty id")
	}

	// Partial update: only the name changes
	newName := "Evening reading"
	if err := store.UpdateHabit(h.ID, patchName(newName)); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}

	habits, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("GetActiveHabits failed: %v", err)
	}

	found := false
	for _, got := range habits {
		if got.ID == h.ID {
			found = true
			if got.Name != newName {
				t.Errorf("expected updated name %q, got %q", newName, got.Name)
			}
			if got.Emoji != "📖" {
				t.Errorf("emoji changed by partial update: %q", got.Emoji)
			}
		}
	}
	if !found {
		t.Error("inserted habit missing from GetActiveHabits")
	}
}

func TestUpdateMissingHabit(t *testing.T) {
	store := setupTestSQLiteStore(t)

	err := store.UpdateHabit("no-such-id", patchName("x"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReorderHabits(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("GetActiveHabits failed: %v", err)
	}
	if len(habits) < 3 {
		t.Fatalf("need at least 3 habits, got %d", len(habits))
	}

	a, b, c := habits[0], habits[1], habits[2]

	// Move c to the front: [c, a, b, rest...]
	ordered := []string{c.ID, a.ID, b.ID}
	for _, h := range habits[3:] {
		ordered = append(ordered, h.ID)
	}

	if err := store.ReorderHabits(ordered); err != nil {
		t.Fatalf("ReorderHabits failed: %v", err)
	}

	reordered, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("GetActiveHabits failed: %v", err)
	}

	if reordered[0].ID != c.ID || reordered[1].ID != a.ID || reordered[2].ID != b.ID {
		t.Errorf("unexpected order after reorder: got [%s %s %s]", reordered[0].Name, reordered[1].Name, reordered[2].Name)
	}
	for i, h := range reordered {
		if h.SortOrder != i {
			t.Errorf("sort orders not dense: habit %d has sort_order %d", i, h.SortOrder)
		}
	}
}

func TestUpsertCheckinOverwrites(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, _ := store.GetActiveHabits()
	h := habits[0]

	if err := store.UpsertCheckin(h.ID, "2025-01-01", 1); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := store.UpsertCheckin(h.ID, "2025-01-01", 0); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	values, err := store.GetCheckinsForDate("2025-01-01")
	if err != nil {
		t.Fatalf("GetCheckinsForDate failed: %v", err)
	}
	if len(values) != 1 {
		t.Errorf("expected exactly 1 value for the date, got %d", len(values))
	}
	if values[h.ID] != 0 {
		t.Errorf("expected overwritten value 0, got %d", values[h.ID])
	}

	// Exactly one row may exist for the pair
	var count int
	err = store.GetDB().QueryRow(
		"SELECT COUNT(*) FROM checkins WHERE habit_id = ? AND date = ?", h.ID, "2025-01-01",
	).Scan(&count)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row for (habit, date), got %d", count)
	}
}

func TestUpsertCheckinRejectsBadValue(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, _ := store.GetActiveHabits()
	err := store.UpsertCheckin(habits[0].ID, "2025-01-01", 2)

	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConstraintError for value 2, got %v", err)
	}
}

func TestBatchUpsertCheckins(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, _ := store.GetActiveHabits()
	values := map[string]int{}
	for i, h := range habits {
		values[h.ID] = i % 2
	}

	if err := store.BatchUpsertCheckins("2025-02-10", values); err != nil {
		t.Fatalf("BatchUpsertCheckins failed: %v", err)
	}

	got, err := store.GetCheckinsForDate("2025-02-10")
	if err != nil {
		t.Fatalf("GetCheckinsForDate failed: %v", err)
	}
	if len(got) != len(values) {
		t.Errorf("expected %d values, got %d", len(values), len(got))
	}
	for id, v := range values {
		if got[id] != v {
			t.Errorf("habit %s: expected %d, got %d", id, v, got[id])
		}
	}
}

func TestGetCheckinsForDateRange(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, _ := store.GetActiveHabits()
	h := habits[0]

	dates := []string{"2025-03-01", "2025-03-02", "2025-03-05", "2025-04-01"}
	for _, d := range dates {
		if err := store.UpsertCheckin(h.ID, d, 1); err != nil {
			t.Fatalf("upsert for %s failed: %v", d, err)
		}
	}

	// Bounds are inclusive
	result, err := store.GetCheckinsForDateRange("2025-03-01", "2025-03-05")
	if err != nil {
		t.Fatalf("GetCheckinsForDateRange failed: %v", err)
	}

	if len(result) != 3 {
		t.Errorf("expected 3 dates in range, got %d", len(result))
	}
	for _, d := range []string{"2025-03-01", "2025-03-02", "2025-03-05"} {
		if result[d][h.ID] != 1 {
			t.Errorf("missing checkin for %s", d)
		}
	}
	if _, ok := result["2025-04-01"]; ok {
		t.Error("date outside range leaked into result")
	}
}

func TestGetCheckinsForDateEmpty(t *testing.T) {
	store := setupTestSQLiteStore(t)

	// No rows is an empty result, not an error
	values, err := store.GetCheckinsForDate("2025-06-01")
	if err != nil {
		t.Fatalf("GetCheckinsForDate failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected empty map, got %d entries", len(values))
	}
}

func TestPreferences(t *testing.T) {
	store := setupTestSQLiteStore(t)

	_, err := store.GetPreference("theme")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unset preference, got %v", err)
	}

	if err := store.SetPreference("theme", "dark"); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	value, err := store.GetPreference("theme")
	if err != nil {
		t.Fatalf("GetPreference failed: %v", err)
	}
	if value != "dark" {
		t.Errorf("expected %q, got %q", "dark", value)
	}

	// Upsert semantics
	if err := store.SetPreference("theme", "light"); err != nil {
		t.Fatalf("SetPreference overwrite failed: %v", err)
	}
	value, _ = store.GetPreference("theme")
	if value != "light" {
		t.Errorf("expected %q after overwrite, got %q", "light", value)
	}
}

func TestValidateSchema(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.ValidateSchema(); err != nil {
		t.Fatalf("ValidateSchema on a current database failed: %v", err)
	}

	// A database written by a newer build must be rejected, not migrated
	if _, err := store.GetDB().Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("failed to bump schema version: %v", err)
	}
	if err := store.ValidateSchema(); err == nil {
		t.Error("expected ValidateSchema to reject a newer database")
	}
}

func TestQueriesBeforeInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "never-opened.db"))

	if _, err := store.GetActiveHabits(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
	if err := store.UpsertCheckin("h", "2025-01-01", 1); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}
