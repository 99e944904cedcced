package migration

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	_ "modernc.org/sqlite"
)

// Step is a single schema migration. Apply runs inside a transaction; the
// version bump is committed in the same transaction, so a failed step leaves
// the schema version unchanged and the step retries cleanly on next launch.
type Step struct {
	Version int
	Name    string
	Apply   func(tx *sql.Tx) error
}

// Runner applies code-defined migration steps against the database's
// user_version counter.
type Runner struct {
	db    *sql.DB
	steps []Step
}

// NewRunner creates a migration runner. Steps are sorted by version.
func NewRunner(db *sql.DB, steps []Step) (*Runner, error) {
	sorted := make([]Step, len(steps))
	copy(sorted, steps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version < sorted[j].Version
	})

	for i, s := range sorted {
		if s.Version < 1 {
			return nil, fmt.Errorf("invalid migration version %d: must be at least 1", s.Version)
		}
		if i > 0 && s.Version == sorted[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", s.Version)
		}
	}

	return &Runner{db: db, steps: sorted}, nil
}

// CurrentVersion returns the schema version stored in the user_version
// pragma. A fresh database reports 0.
func (r *Runner) CurrentVersion() (int, error) {
	var version int
	if err := r.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// LatestVersion returns the highest step version the runner knows about.
func (r *Runner) LatestVersion() int {
	if len(r.steps) == 0 {
		return 0
	}
	return r.steps[len(r.steps)-1].Version
}

// Apply runs all pending steps in version order and returns the number of
// steps applied. Re-running against a current database performs no writes.
func (r *Runner) Apply(logFn func(string)) (int, error) {
	if logFn == nil {
		logFn = func(string) {}
	}

	currentVersion, err := r.CurrentVersion()
	if err != nil {
		return 0, err
	}

	latest := r.LatestVersion()
	if currentVersion > latest {
		return 0, fmt.Errorf("database schema version (%d) is newer than supported version (%d) - please upgrade the application", currentVersion, latest)
	}

	var pending []Step
	for _, s := range r.steps {
		if s.Version > currentVersion {
			pending = append(pending, s)
		}
	}

	if len(pending) == 0 {
		logFn(fmt.Sprintf("Database schema is up to date (version %d)", currentVersion))
		return 0, nil
	}

	logFn(fmt.Sprintf("Current schema version: %d", currentVersion))
	logFn(fmt.Sprintf("Applying %d migration(s)...", len(pending)))

	startTime := time.Now()
	applied := 0

	for _, step := range pending {
		logFn(fmt.Sprintf("  Applying migration %d: %s", step.Version, step.Name))

		tx, err := r.db.Begin()
		if err != nil {
			return applied, fmt.Errorf("failed to begin transaction for migration %d: %w", step.Version, err)
		}

		if err := step.Apply(tx); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to apply migration %d (%s): %w", step.Version, step.Name, err)
		}

		// PRAGMA does not accept bound parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", step.Version)); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to set version in migration %d: %w", step.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("failed to commit migration %d: %w", step.Version, err)
		}

		applied++
	}

	logFn(fmt.Sprintf("Applied %d migration(s) in %v", applied, time.Since(startTime)))

	return applied, nil
}

// Validate checks that the database version is not newer than the
// application supports.
func (r *Runner) Validate() error {
	currentVersion, err := r.CurrentVersion()
	if err != nil {
		return err
	}
	if latest := r.LatestVersion(); currentVersion > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d) - please upgrade the application", currentVersion, latest)
	}
	return nil
}
