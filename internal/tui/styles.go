package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Timer state colors
	Running lipgloss.Color
	Paused  lipgloss.Color
	Idle    lipgloss.Color

	// Record list colors
	RowNormal   lipgloss.Color
	RowSelected lipgloss.Color
	RowMuted    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	Running: lipgloss.Color("#00B894"), // Green
	Paused:  lipgloss.Color("#FDCB6E"), // Yellow
	Idle:    lipgloss.Color("#636E72"), // Gray

	RowNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	RowSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	RowMuted:    lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header lipgloss.Style

	// Timer panel
	TimerClock   lipgloss.Style
	TimerProject lipgloss.Style
	StateRunning lipgloss.Style
	StatePaused  lipgloss.Style
	StateIdle    lipgloss.Style

	// Stat tiles
	Tile      lipgloss.Style
	TileValue lipgloss.Style
	TileLabel lipgloss.Style

	// Record list
	ListTitle      lipgloss.Style
	RowNormal      lipgloss.Style
	RowSelected    lipgloss.Style
	RowNotes       lipgloss.Style
	CursorNormal   lipgloss.Style
	CursorSelected lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
	InputLabel  lipgloss.Style

	// Status line
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	// Share view
	ShareURL lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		TimerClock: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.RowNormal),

		TimerProject: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		StateRunning: lipgloss.NewStyle().
			Foreground(Colors.Running).
			Bold(true),

		StatePaused: lipgloss.NewStyle().
			Foreground(Colors.Paused).
			Bold(true),

		StateIdle: lipgloss.NewStyle().
			Foreground(Colors.Idle),

		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 2).
			MarginRight(1),

		TileValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		TileLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ListTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary).
			MarginTop(1),

		RowNormal: lipgloss.NewStyle().
			Foreground(Colors.RowNormal),

		RowSelected: lipgloss.NewStyle().
			Foreground(Colors.RowSelected).
			Bold(true),

		RowNotes: lipgloss.NewStyle().
			Foreground(Colors.RowMuted),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.RowSelected).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Colors.Success),

		StatusError: lipgloss.NewStyle().
			Foreground(Colors.Error),

		ShareURL: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Underline(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}
