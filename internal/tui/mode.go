// Package tui provides the terminal user interface for tempo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeProject                // Project input mode (before starting the timer)
	ModeNotes                  // Notes input mode (for the selected record)
	ModeDate                   // Date filter input mode
	ModeConfig                 // Sync configuration form mode
	ModeConfirm                // Confirmation dialog mode
	ModeShare                  // Dashboard link view mode
	ModeHelp                   // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeProject:
		return "project"
	case ModeNotes:
		return "notes"
	case ModeDate:
		return "date"
	case ModeConfig:
		return "config"
	case ModeConfirm:
		return "confirm"
	case ModeShare:
		return "share"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeProject, ModeNotes, ModeDate, ModeConfig:
		return true
	case ModeNormal, ModeConfirm, ModeShare, ModeHelp:
		return false
	}
	return false
}

// Config form field indices, in focus order.
const (
	configFieldToken = iota
	configFieldUsername
	configFieldRepo
	configFieldAutoSync
	configFieldCount
)
