package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/logger"
	"github.com/OneZee23/life-track/internal/migration"
	"github.com/OneZee23/life-track/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// Init opens the database and brings the schema to the current version.
// It must complete before any query runs; a migration failure leaves the
// version counter untouched and is fatal to startup.
func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := s.ensureDeviceID(); err != nil {
		return fmt.Errorf("failed to ensure device id: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	runner, err := migration.NewRunner(s.db, migrationSteps())
	if err != nil {
		return err
	}
	_, err = runner.Apply(func(msg string) {
		logger.Debug(msg)
	})
	return err
}

// SchemaVersion reports the database's current migration version.
func (s *SQLiteStore) SchemaVersion() (int, error) {
	if s.db == nil {
		return 0, ErrNotInitialized
	}
	runner, err := migration.NewRunner(s.db, migrationSteps())
	if err != nil {
		return 0, err
	}
	return runner.CurrentVersion()
}

// ValidateSchema rejects a database whose version is newer than this
// build supports.
func (s *SQLiteStore) ValidateSchema() error {
	if s.db == nil {
		return ErrNotInitialized
	}
	runner, err := migration.NewRunner(s.db, migrationSteps())
	if err != nil {
		return err
	}
	return runner.Validate()
}

// LatestSchemaVersion reports the version a fully migrated database has.
func (s *SQLiteStore) LatestSchemaVersion() int {
	runner, err := migration.NewRunner(nil, migrationSteps())
	if err != nil {
		return 0
	}
	return runner.LatestVersion()
}

// ensureDeviceID generates the device identifier exactly once. The check is
// an existence query rather than a version gate, so databases upgraded
// mid-way still end up with an id.
func (s *SQLiteStore) ensureDeviceID() error {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", constants.PrefDeviceID).Scan(&value)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = s.db.Exec(
		"INSERT INTO preferences (key, value) VALUES (?, ?)",
		constants.PrefDeviceID, uuid.NewString(),
	)
	return err
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// GetActiveHabits returns non-deleted habits ordered by sort position.
// An empty list is a valid result, not an error.
func (s *SQLiteStore) GetActiveHabits() ([]models.Habit, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.Query(`
		SELECT id, name, emoji, sort_order, created_at
		FROM habits WHERE deleted_at IS NULL ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Emoji, &h.SortOrder, &h.CreatedAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// GetAllHabits returns every habit ever created, deleted ones included, so
// history views can still attribute old checkins.
func (s *SQLiteStore) GetAllHabits() ([]models.HabitRecord, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.Query(`
		SELECT id, name, emoji, sort_order, created_at, deleted_at
		FROM habits ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.HabitRecord
	for rows.Next() {
		var r models.HabitRecord
		var deletedAt sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &r.Emoji, &r.SortOrder, &r.CreatedAt, &deletedAt); err != nil {
			return nil, err
		}
		if deletedAt.Valid {
			r.DeletedAt = &deletedAt.String
		}
		habits = append(habits, r)
	}

	return habits, rows.Err()
}

// InsertHabit creates a habit with a fresh id. The active-count ceiling is
// the caller's precondition, not a database constraint.
func (s *SQLiteStore) InsertHabit(name, emoji string, sortOrder int) (models.Habit, error) {
	if s.db == nil {
		return models.Habit{}, ErrNotInitialized
	}

	h := models.Habit{
		ID:        uuid.NewString(),
		Name:      name,
		Emoji:     emoji,
		SortOrder: sortOrder,
		CreatedAt: now(),
	}

	_, err := s.db.Exec(
		"INSERT INTO habits (id, name, emoji, sort_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		h.ID, h.Name, h.Emoji, h.SortOrder, h.CreatedAt, h.CreatedAt,
	)
	if err != nil {
		return models.Habit{}, wrapWrite("insert habit", err)
	}

	return h, nil
}

// UpdateHabit applies only the supplied patch fields and always bumps
// updated_at.
func (s *SQLiteStore) UpdateHabit(id string, patch models.HabitPatch) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	sets := []string{}
	args := []any{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Emoji != nil {
		sets = append(sets, "emoji = ?")
		args = append(args, *patch.Emoji)
	}
	if patch.SortOrder != nil {
		sets = append(sets, "sort_order = ?")
		args = append(args, *patch.SortOrder)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, now(), id)

	query := "UPDATE habits SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += " WHERE id = ?"

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return wrapWrite("update habit", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	return nil
}

// DeleteHabit soft-deletes: it stamps deleted_at and never touches the
// habit's checkin rows.
func (s *SQLiteStore) DeleteHabit(id string) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM habits WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("habit %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to check habit existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("habit %s is already deleted", id)
	}

	ts := now()
	_, err = s.db.Exec("UPDATE habits SET deleted_at = ?, updated_at = ? WHERE id = ?", ts, ts, id)
	return err
}

// ReorderHabits writes sort_order = positional index for every id, in one
// transaction. The caller must pass the complete, deduplicated ordered id
// list for all active habits; partial lists break the contiguity invariant.
func (s *SQLiteStore) ReorderHabits(orderedIDs []string) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("UPDATE habits SET sort_order = ?, updated_at = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	ts := now()
	for i, id := range orderedIDs {
		if _, err := stmt.Exec(i, ts, id); err != nil {
			return wrapWrite("reorder habits", err)
		}
	}

	return tx.Commit()
}

const upsertCheckinSQL = `
	INSERT INTO checkins (id, habit_id, date, value, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(habit_id, date) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// UpsertCheckin inserts or overwrites the (habit, date) record. Prior
// values are not kept; last write wins per day.
func (s *SQLiteStore) UpsertCheckin(habitID, date string, value int) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	if value != 0 && value != 1 {
		return &ConstraintError{Op: "upsert checkin", Err: fmt.Errorf("value must be 0 or 1, got %d", value)}
	}

	_, err := s.db.Exec(upsertCheckinSQL, uuid.NewString(), habitID, date, value, now())
	return wrapWrite("upsert checkin", err)
}

// BatchUpsertCheckins commits a full day's values in one transaction so a
// mid-save crash cannot leave the day half-written across habits.
func (s *SQLiteStore) BatchUpsertCheckins(date string, values models.DayValues) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	for habitID, value := range values {
		if value != 0 && value != 1 {
			return &ConstraintError{Op: "batch upsert checkins", Err: fmt.Errorf("value for habit %s must be 0 or 1, got %d", habitID, value)}
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertCheckinSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ts := now()
	for habitID, value := range values {
		if _, err := stmt.Exec(uuid.NewString(), habitID, date, value, ts); err != nil {
			return wrapWrite("batch upsert checkins", err)
		}
	}

	return tx.Commit()
}

// GetCheckinsForDate returns habit id → value for one date. A date with no
// rows yields an empty map.
func (s *SQLiteStore) GetCheckinsForDate(date string) (models.DayValues, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.Query("SELECT habit_id, value FROM checkins WHERE date = ?", date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := models.DayValues{}
	for rows.Next() {
		var habitID string
		var value int
		if err := rows.Scan(&habitID, &value); err != nil {
			return nil, err
		}
		values[habitID] = value
	}

	return values, rows.Err()
}

// GetCheckinsForDateRange returns date → habit id → value for the inclusive
// range, hydrating month and year views in a single round trip.
func (s *SQLiteStore) GetCheckinsForDateRange(from, to string) (models.RangeValues, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.Query(
		"SELECT habit_id, date, value FROM checkins WHERE date >= ? AND date <= ?",
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := models.RangeValues{}
	for rows.Next() {
		var habitID, date string
		var value int
		if err := rows.Scan(&habitID, &date, &value); err != nil {
			return nil, err
		}
		if result[date] == nil {
			result[date] = models.DayValues{}
		}
		result[date][habitID] = value
	}

	return result, rows.Err()
}

func (s *SQLiteStore) GetPreference(key string) (string, error) {
	if s.db == nil {
		return "", ErrNotInitialized
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("preference %s: %w", key, ErrNotFound)
		}
		return "", err
	}

	return value, nil
}

func (s *SQLiteStore) SetPreference(key, value string) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return wrapWrite("set preference", err)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the handle for diagnostics and backup verification.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
