// Package cli provides the CLI presentation layer for the tasklog
// application. It handles command-line output formatting and dependency
// injection for commands.
package cli

import (
	"github.com/xolan/tasklog/internal/task"
)

// FormatHours formats an hours value for display
// Examples: "0.0", "2.0", "3.5"
func FormatHours(hours float64) string {
	return task.FormatHours(hours)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
