package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/dates"
)

// HabitName checks a habit's display name: non-empty after trimming and at
// most HabitNameLimit runes.
func HabitName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if n := utf8.RuneCountInString(trimmed); n > constants.HabitNameLimit {
		return fmt.Errorf("habit name must be at most %d characters, got %d", constants.HabitNameLimit, n)
	}
	return nil
}

// Emoji checks a habit's icon label.
func Emoji(emoji string) error {
	if strings.TrimSpace(emoji) == "" {
		return fmt.Errorf("habit emoji must not be empty")
	}
	return nil
}

// Date checks a YYYY-MM-DD string.
func Date(s string) error {
	_, err := dates.Parse(s)
	return err
}

// WritableDate checks a date intended for a checkin write: it must parse
// and must not lie in the future relative to the device clock.
func WritableDate(s string, now time.Time) error {
	d, err := dates.Parse(s)
	if err != nil {
		return err
	}
	if d.After(dates.Midnight(now)) {
		return fmt.Errorf("cannot record a check-in for future date %s", s)
	}
	return nil
}

// Theme checks a theme preference value.
func Theme(theme string) error {
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		return fmt.Errorf("theme must be %q or %q, got %q", constants.ThemeLight, constants.ThemeDark, theme)
	}
	return nil
}
