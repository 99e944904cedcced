package storage

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/migration"
)

// checkins deliberately carries no ON DELETE CASCADE: soft-deleting a habit
// must leave its history retrievable.
const (
	createHabitsTable = `
		CREATE TABLE IF NOT EXISTS habits (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			emoji       TEXT NOT NULL,
			sort_order  INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at  TEXT NOT NULL DEFAULT (datetime('now'))
		)`

	createCheckinsTable = `
		CREATE TABLE IF NOT EXISTS checkins (
			id          TEXT PRIMARY KEY,
			habit_id    TEXT NOT NULL REFERENCES habits(id),
			date        TEXT NOT NULL,
			value       INTEGER NOT NULL CHECK (value IN (0, 1)),
			created_at  TEXT NOT NULL DEFAULT (datetime('now')),
			UNIQUE(habit_id, date)
		)`

	createPreferencesTable = `
		CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`

	createIndexCheckinsDate = `
		CREATE INDEX IF NOT EXISTS idx_checkins_date ON checkins(date)`

	createIndexCheckinsHabitDate = `
		CREATE INDEX IF NOT EXISTS idx_checkins_habit_date ON checkins(habit_id, date)`
)

// migrationSteps returns the forward-only schema migrations, gated by the
// user_version counter.
func migrationSteps() []migration.Step {
	return []migration.Step{
		{
			Version: 1,
			Name:    "init",
			Apply:   applyInitialSchema,
		},
		{
			Version: 2,
			Name:    "habit_soft_delete",
			Apply: func(tx *sql.Tx) error {
				_, err := tx.Exec("ALTER TABLE habits ADD COLUMN deleted_at TEXT DEFAULT NULL")
				return err
			},
		},
		{
			Version: 3,
			Name:    "checkin_updated_at",
			Apply: func(tx *sql.Tx) error {
				// Reserved for last-write-wins conflict resolution. ADD COLUMN
				// only accepts constant defaults, so backfill separately.
				if _, err := tx.Exec("ALTER TABLE checkins ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''"); err != nil {
					return err
				}
				_, err := tx.Exec("UPDATE checkins SET updated_at = datetime('now') WHERE updated_at = ''")
				return err
			},
		},
	}
}

func applyInitialSchema(tx *sql.Tx) error {
	stmts := []string{
		createHabitsTable,
		createCheckinsTable,
		createPreferencesTable,
		createIndexCheckinsDate,
		createIndexCheckinsHabitDate,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	// Purge partially-inserted seed rows from a previous failed attempt so
	// the step stays idempotent under crash-and-retry.
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}

	for i, h := range constants.DefaultHabits {
		_, err := tx.Exec(
			"INSERT INTO habits (id, name, emoji, sort_order) VALUES (?, ?, ?, ?)",
			uuid.NewString(), h.Name, h.Emoji, i,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
