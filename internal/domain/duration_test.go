package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 42000, "42s"},
		{"minute and second", 61000, "1m 1s"},
		{"hour and minute", 3661000, "1h 1m"},
		{"hours drop seconds", 7325000, "2h 2m"},
		{"sub-second floors to zero", 999, "0s"},
		{"negative clamps to zero", -5000, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.ms))
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"minute and second", 61000, "00:01:01"},
		{"hour", 3661000, "01:01:01"},
		{"hours do not wrap", 90000000, "25:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.ms))
		})
	}
}
