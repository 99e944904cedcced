package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotInitialized is returned when a query runs before Init.
	ErrNotInitialized = errors.New("storage not initialized, run 'lifetrack init' first")

	// ErrNotFound is returned when a requested row does not exist. Reading
	// a date with no checkins is not a not-found condition; it returns an
	// empty result instead.
	ErrNotFound = errors.New("not found")
)

// ConstraintError wraps a write rejected by a uniqueness or check
// constraint. The store never coerces invalid values; the only documented
// overwrite is the (habit, date) upsert.
type ConstraintError struct {
	Op  string
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: constraint violation: %v", e.Op, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// wrapWrite classifies a write error, surfacing constraint violations as
// *ConstraintError.
func wrapWrite(op string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(strings.ToLower(err.Error()), "constraint") {
		return &ConstraintError{Op: op, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
