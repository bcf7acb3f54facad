package domain

import "fmt"

// FormatDuration renders a millisecond count as a short human string:
// "2h 5m", "5m 30s" or "42s".
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds := ms / 1000 % 60
	minutes := ms / 60000 % 60
	hours := ms / 3600000

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatClock renders a millisecond count as a zero-padded HH:MM:SS
// clock display. Hours do not wrap.
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds := ms / 1000 % 60
	minutes := ms / 60000 % 60
	hours := ms / 3600000
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
