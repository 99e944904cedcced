package storage

import (
	"errors"
	"testing"
)

func TestHabitSoftDelete(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("GetActiveHabits failed: %v", err)
	}
	target := habits[0]

	if err := store.DeleteHabit(target.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	// Gone from the active list
	active, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("GetActiveHabits failed: %v", err)
	}
	for _, h := range active {
		if h.ID == target.ID {
			t.Error("deleted habit still appears in GetActiveHabits")
		}
	}

	// Still present, flagged deleted, in the full list
	all, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	found := false
	for _, r := range all {
		if r.ID == target.ID {
			found = true
			if !r.Deleted() {
				t.Error("deleted habit not flagged in GetAllHabits")
			}
			if r.DeletedAt == nil || *r.DeletedAt == "" {
				t.Error("deleted habit has no deletion timestamp")
			}
		}
	}
	if !found {
		t.Error("deleted habit missing from GetAllHabits")
	}
}

func TestSoftDeletePreservesCheckins(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, _ := store.GetActiveHabits()
	target := habits[0]

	dates := []string{"2025-01-01", "2025-01-02", "2025-01-03"}
	for _, d := range dates {
		if err := store.UpsertCheckin(target.ID, d, 1); err != nil {
			t.Fatalf("upsert for %s failed: %v", d, err)
		}
	}

	if err := store.DeleteHabit(target.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	// History must survive the soft delete
	result, err := store.GetCheckinsForDateRange("2025-01-01", "2025-01-03")
	if err != nil {
		t.Fatalf("GetCheckinsForDateRange failed: %v", err)
	}
	for _, d := range dates {
		if result[d][target.ID] != 1 {
			t.Errorf("checkin for %s lost after soft delete", d)
		}
	}
}

func TestDeleteHabitTwice(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habits, _ := store.GetActiveHabits()
	target := habits[0]

	if err := store.DeleteHabit(target.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if err := store.DeleteHabit(target.ID); err == nil {
		t.Error("expected error when deleting an already-deleted habit")
	}
}

func TestDeleteMissingHabit(t *testing.T) {
	store := setupTestSQLiteStore(t)

	err := store.DeleteHabit("no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletedHabitRetainsIdentity(t *testing.T) {
	store := setupTestSQLiteStore(t)

	h, err := store.InsertHabit("Stretching", "🧘", 5)
	if err != nil {
		t.Fatalf("InsertHabit failed: %v", err)
	}

	if err := store.DeleteHabit(h.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	all, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	for _, r := range all {
		if r.ID == h.ID {
			if r.Name != "Stretching" {
				t.Errorf("deleted habit lost its name: %q", r.Name)
			}
			return
		}
	}
	t.Error("deleted habit's row was removed")
}
