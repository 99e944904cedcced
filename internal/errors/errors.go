// Package errors formats failures at the CLI edge. Inner packages wrap
// with fmt.Errorf and %w; this is only the final presentation step.
package errors

import (
	"fmt"
	"os"

	"github.com/OneZee23/life-track/internal/logger"
)

// exit is swapped in tests
var exit = os.Exit

// Format renders an error for the terminal with the standard prefix.
// A nil error renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

// Formatf renders a formatted message with the standard prefix.
func Formatf(format string, args ...interface{}) string {
	return "Error: " + fmt.Sprintf(format, args...)
}

// Fatal logs the error, prints it to stderr, and exits with code 1.
// A nil error is a no-op so callers can pass through results unchecked.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	exit(1)
}

// Fatalf is Fatal for a formatted message.
func Fatalf(format string, args ...interface{}) {
	logger.Error("command failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintln(os.Stderr, Formatf(format, args...))
	exit(1)
}
