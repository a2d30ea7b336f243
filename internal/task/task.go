// Package task defines the task record type and its validation rules.
package task

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format for task dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Validation errors for task input
var (
	ErrInvalidDate   = errors.New("invalid date format")
	ErrNegativeHours = errors.New("hours must be a non-negative number")
)

// Record represents a single logged task.
// Records are immutable once written; the store is append-only.
type Record struct {
	// CreatedAt is the instant the record was logged (machine-set).
	CreatedAt time.Time
	// Date is the calendar date the task belongs to, in YYYY-MM-DD form.
	Date string
	// Description is the free-text task description.
	Description string
	// Hours is the time spent on the task, in hours.
	Hours float64
}

// New validates the given fields and returns a Record stamped with the
// current instant. An empty date defaults to today.
func New(description, date string, hours float64) (Record, error) {
	if date == "" {
		date = time.Now().Format(DateLayout)
	}
	if err := ValidateDate(date); err != nil {
		return Record{}, err
	}
	if err := ValidateHours(hours); err != nil {
		return Record{}, err
	}

	return Record{
		CreatedAt:   time.Now(),
		Date:        date,
		Description: description,
		Hours:       hours,
	}, nil
}

// ValidateDate checks that the date is a well-formed YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return ErrInvalidDate
	}
	// Reject inputs that parse but don't round-trip (e.g. "2024-1-5").
	if parsed.Format(DateLayout) != date {
		return ErrInvalidDate
	}
	return nil
}

// ValidateHours checks that hours is non-negative.
func ValidateHours(hours float64) error {
	if hours < 0 {
		return ErrNegativeHours
	}
	return nil
}

// FormatHours formats an hours value with the shortest decimal
// representation, keeping at least one fractional digit ("0.0", "3.5").
// This matches the format used in existing log files.
func FormatHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
