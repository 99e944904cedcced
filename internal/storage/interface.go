package storage

import "github.com/OneZee23/life-track/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Habits
	GetActiveHabits() ([]models.Habit, error)
	GetAllHabits() ([]models.HabitRecord, error)
	InsertHabit(name, emoji string, sortOrder int) (models.Habit, error)
	UpdateHabit(id string, patch models.HabitPatch) error
	DeleteHabit(id string) error
	ReorderHabits(orderedIDs []string) error

	// Checkins
	UpsertCheckin(habitID, date string, value int) error
	BatchUpsertCheckins(date string, values models.DayValues) error
	GetCheckinsForDate(date string) (models.DayValues, error)
	GetCheckinsForDateRange(from, to string) (models.RangeValues, error)

	// Preferences
	GetPreference(key string) (string, error)
	SetPreference(key, value string) error

	// Utils
	GetConfigPath() string
}
