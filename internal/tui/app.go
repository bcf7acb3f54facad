package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/takumin/tempo/internal/app"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/usecase"
)

const (
	// displayInterval drives the live elapsed readout.
	displayInterval = 100 * time.Millisecond
	// autoSyncInterval is how often a configured auto-sync fires.
	autoSyncInterval = 5 * time.Minute
	// statusClearAfter removes transient status messages.
	statusClearAfter = 5 * time.Second
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config

	// State (slices - contain pointers)
	records  []domain.Record
	projects []string

	// Components (structs with pointers)
	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model

	// Input state (large structs)
	projectInput  textinput.Model
	notesInput    textinput.Model
	dateInput     textinput.Model
	tokenInput    textinput.Model
	usernameInput textinput.Model
	repoInput     textinput.Model

	// Derived display state
	stats        domain.Stats
	status       string
	statusIsErr  bool
	dashboardURL string
	filterDate   *time.Time

	// Numeric state (smaller types last)
	mode           Mode
	width          int
	height         int
	cursor         int
	projectCursor  int
	notesTargetID  int64
	confirmID      int64
	displayGen     int
	autoSyncGen    int
	configFocus    int
	configAutoSync bool
	syncing        bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	pi := textinput.New()
	pi.Placeholder = "Project name"
	pi.CharLimit = 200

	ni := textinput.New()
	ni.Placeholder = "Notes"
	ni.CharLimit = 1000

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD (empty = all)"
	di.CharLimit = 10

	ti := textinput.New()
	ti.Placeholder = "GitHub personal access token"
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 200

	ui := textinput.New()
	ui.Placeholder = "GitHub username"
	ui.CharLimit = 100

	ri := textinput.New()
	ri.Placeholder = "Repository name"
	ri.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		container:     c,
		mode:          ModeNormal,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		spinner:       sp,
		projectInput:  pi,
		notesInput:    ni,
		dateInput:     di,
		tokenInput:    ti,
		usernameInput: ui,
		repoInput:     ri,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadRecords(),
		m.loadStats(),
		m.loadConfig(),
	)
}

// loadRecords returns a command that loads records from the store,
// honoring the current date filter.
func (m *Model) loadRecords() tea.Cmd {
	filter := m.filterDate
	return func() tea.Msg {
		out, err := m.container.ListRecordsUseCase().Execute(context.Background(), usecase.ListRecordsInput{Date: filter})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgRecordsLoaded{Records: out.Records, Projects: out.Projects}
	}
}

// loadStats returns a command that computes the stat tiles.
func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.GetStatsUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatsLoaded{Stats: out.Stats}
	}
}

// loadConfig returns a command that loads the configuration.
func (m *Model) loadConfig() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowConfigUseCase().Execute(context.Background())
		if err != nil {
			// Config loading failure is not fatal; use defaults
			return MsgConfigLoaded{Config: domain.NewDefaultConfig()}
		}
		return MsgConfigLoaded{Config: out.Config, DashboardURL: out.DashboardURL}
	}
}

func (m *Model) startTimer(project, selected string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.StartTimerUseCase().Execute(context.Background(), usecase.StartTimerInput{
			Project:  project,
			Selected: selected,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTimerStarted{Project: out.Project, Resumed: out.Resumed}
	}
}

func (m *Model) pauseTimer() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.PauseTimerUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTimerPaused{Project: out.Project, ElapsedMs: out.ElapsedMs}
	}
}

func (m *Model) stopTimer() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.StopTimerUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTimerStopped{Record: out.Record, AutoSync: out.AutoSync}
	}
}

func (m *Model) deleteRecord(id int64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteRecordUseCase().Execute(context.Background(), usecase.DeleteRecordInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgRecordDeleted{ID: id, AutoSync: out.AutoSync}
	}
}

func (m *Model) saveNotes(id int64, notes string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.EditNotesUseCase().Execute(context.Background(), usecase.EditNotesInput{ID: id, Notes: notes})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgNotesSaved{ID: id, AutoSync: out.AutoSync}
	}
}

// runSync uploads the full record set. Callers set m.syncing before
// dispatching and only dispatch when no sync is already in flight.
func (m *Model) runSync() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SyncRecordsUseCase().Execute(context.Background())
		if err != nil {
			return MsgSyncFinished{Err: err}
		}
		return MsgSyncFinished{DashboardURL: out.DashboardURL, RecordCount: out.RecordCount}
	}
}

func (m *Model) saveConfig(in usecase.SetConfigInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetConfigUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgConfigSaved{DashboardURL: out.DashboardURL, AutoSync: out.AutoSync}
	}
}

// displayTick schedules the next elapsed-readout refresh under the
// given generation.
func displayTick(gen int) tea.Cmd {
	return tea.Tick(displayInterval, func(time.Time) tea.Msg {
		return MsgDisplayTick{Gen: gen}
	})
}

// autoSyncTick schedules the next periodic sync under the given
// generation.
func autoSyncTick(gen int) tea.Cmd {
	return tea.Tick(autoSyncInterval, func(time.Time) tea.Msg {
		return MsgAutoSyncTick{Gen: gen}
	})
}

// clearStatusLater clears the status line after a short delay.
func clearStatusLater() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return MsgClearStatus{}
	})
}

// autoSyncEnabled reports whether the periodic sync should be running.
func (m *Model) autoSyncEnabled() bool {
	return m.config != nil && m.config.Sync.AutoSync && m.config.Sync.Token != ""
}

// selectedRecord returns the record under the cursor, or nil.
func (m *Model) selectedRecord() *domain.Record {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil
	}
	return &m.records[m.cursor]
}

// clampCursor keeps the cursor inside the record list after reloads.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
