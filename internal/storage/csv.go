// Package storage implements the append-only CSV store for task records.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/xolan/tasklog/internal/task"
)

// DefaultFile is the default storage file name, resolved against the
// working directory.
const DefaultFile = "tasklog.csv"

// Header is the fixed four-column header written to new storage files.
var Header = []string{"timestamp", "date", "task", "hours"}

// FormatError reports a storage row that could not be parsed.
type FormatError struct {
	Line int   // 1-indexed line number in the storage file
	Err  error // underlying parse error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("storage format error at line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// EnsureExists creates the storage file with the header row if it doesn't exist.
func EnsureExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// AppendRecord appends a single record to the CSV storage file.
// Creates the file with the header row if it doesn't exist.
// Uses O_APPEND for atomic append operations.
func AppendRecord(path string, r task.Record) error {
	if err := EnsureExists(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	row := []string{
		r.CreatedAt.Format(time.RFC3339),
		r.Date,
		r.Description,
		task.FormatHours(r.Hours),
	}
	if err := writer.Write(row); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// ReadRecords reads all records from the CSV storage file in insertion order.
// Creates an empty store (header only) if none exists, so reading never
// errors on a fresh working directory. Returns a *FormatError if a row
// cannot be parsed.
func ReadRecords(path string) ([]task.Record, error) {
	if err := EnsureExists(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	// Skip the header row. An empty file yields no records.
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []task.Record{}, nil
		}
		return nil, wrapFormatError(err, 1)
	}

	records := []task.Record{}
	line := 1
	for {
		line++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapFormatError(err, line)
		}

		r, err := parseRow(row)
		if err != nil {
			return nil, &FormatError{Line: line, Err: err}
		}
		records = append(records, r)
	}

	return records, nil
}

// parseRow converts one CSV row into a task.Record.
func parseRow(row []string) (task.Record, error) {
	createdAt, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return task.Record{}, fmt.Errorf("invalid timestamp %q: %w", row[0], err)
	}

	hours, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return task.Record{}, fmt.Errorf("invalid hours %q: %w", row[3], err)
	}

	return task.Record{
		CreatedAt:   createdAt,
		Date:        row[1],
		Description: row[2],
		Hours:       hours,
	}, nil
}

// wrapFormatError converts a csv.Reader error into a *FormatError,
// preferring the reader's own line information when available.
func wrapFormatError(err error, fallbackLine int) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Line: parseErr.Line, Err: parseErr.Err}
	}
	return &FormatError{Line: fallbackLine, Err: err}
}
