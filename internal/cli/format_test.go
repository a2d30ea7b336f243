package cli

import "testing"

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{"zero keeps decimal", 0.0, "0.0"},
		{"whole number keeps decimal", 2.0, "2.0"},
		{"fraction", 3.5, "3.5"},
		{"two decimals", 1.25, "1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatHours(tt.hours)
			if result != tt.expected {
				t.Errorf("FormatHours(%v) = %q, expected %q", tt.hours, result, tt.expected)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		count    int
		expected string
	}{
		{"singular", "task", 1, "task"},
		{"plural", "task", 2, "tasks"},
		{"zero is plural", "task", 0, "tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Pluralize(tt.word, tt.count)
			if result != tt.expected {
				t.Errorf("Pluralize(%q, %d) = %q, expected %q", tt.word, tt.count, result, tt.expected)
			}
		})
	}
}
