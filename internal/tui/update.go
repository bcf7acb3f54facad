package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgRecordsLoaded:
		m.records = msg.Records
		m.projects = msg.Projects
		m.clampCursor()
		return m, nil

	case MsgStatsLoaded:
		m.stats = msg.Stats
		return m, nil

	case MsgConfigLoaded:
		m.config = msg.Config
		m.dashboardURL = msg.DashboardURL
		return m, m.rescheduleAutoSync()

	case MsgConfigSaved:
		m.mode = ModeNormal
		m.setStatus(fmt.Sprintf("Configuration saved (auto-sync %s)", onOff(msg.AutoSync)), false)
		// Reload so the auto-sync timer follows the new settings
		return m, tea.Batch(m.loadConfig(), clearStatusLater())

	case MsgTimerStarted:
		m.mode = ModeNormal
		m.projectInput.Reset()
		if msg.Resumed {
			m.setStatus(fmt.Sprintf("Resumed %s", msg.Project), false)
		} else {
			m.setStatus(fmt.Sprintf("Started %s", msg.Project), false)
		}
		// New generation cancels any stale pending tick
		m.displayGen++
		return m, tea.Batch(displayTick(m.displayGen), clearStatusLater())

	case MsgTimerPaused:
		m.displayGen++
		m.setStatus(fmt.Sprintf("Paused %s at %s", msg.Project, domain.FormatDuration(msg.ElapsedMs)), false)
		return m, clearStatusLater()

	case MsgTimerStopped:
		m.displayGen++
		m.setStatus(fmt.Sprintf("Recorded %s on %s", domain.FormatDuration(msg.Record.Duration), msg.Record.Project), false)
		cmds := []tea.Cmd{m.loadRecords(), m.loadStats(), clearStatusLater()}
		if cmd := m.maybeStartSync(msg.AutoSync); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case MsgRecordDeleted:
		m.mode = ModeNormal
		m.confirmID = 0
		m.setStatus(fmt.Sprintf("Deleted record %d", msg.ID), false)
		cmds := []tea.Cmd{m.loadRecords(), m.loadStats(), clearStatusLater()}
		if cmd := m.maybeStartSync(msg.AutoSync); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case MsgNotesSaved:
		m.mode = ModeNormal
		m.notesInput.Reset()
		m.setStatus("Notes updated", false)
		cmds := []tea.Cmd{m.loadRecords(), clearStatusLater()}
		if cmd := m.maybeStartSync(msg.AutoSync); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case MsgSyncFinished:
		m.syncing = false
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("Sync failed: %v", msg.Err), true)
			return m, clearStatusLater()
		}
		m.dashboardURL = msg.DashboardURL
		m.setStatus(fmt.Sprintf("Synced %d records", msg.RecordCount), false)
		return m, clearStatusLater()

	case MsgDisplayTick:
		// Stale ticks from a cancelled generation are dropped
		if msg.Gen != m.displayGen {
			return m, nil
		}
		if m.container.Timer.State() != domain.TimerRunning {
			return m, nil
		}
		return m, displayTick(msg.Gen)

	case MsgAutoSyncTick:
		if msg.Gen != m.autoSyncGen {
			return m, nil
		}
		if !m.autoSyncEnabled() {
			return m, nil
		}
		cmds := []tea.Cmd{autoSyncTick(msg.Gen)}
		if cmd := m.maybeStartSync(true); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case MsgError:
		m.setStatus(msg.Err.Error(), true)
		if m.mode == ModeConfirm {
			m.mode = ModeNormal
			m.confirmID = 0
		}
		return m, clearStatusLater()

	case MsgClearStatus:
		m.status = ""
		m.statusIsErr = false
		return m, nil
	}

	return m, nil
}

// maybeStartSync dispatches a sync when asked for and none is already
// in flight. Returns nil when nothing should run.
func (m *Model) maybeStartSync(want bool) tea.Cmd {
	if !want || m.syncing {
		return nil
	}
	m.syncing = true
	return tea.Batch(m.spinner.Tick, m.runSync())
}

// rescheduleAutoSync restarts the periodic sync timer under a fresh
// generation, or stops it when auto-sync is off.
func (m *Model) rescheduleAutoSync() tea.Cmd {
	m.autoSyncGen++
	if !m.autoSyncEnabled() {
		return nil
	}
	return autoSyncTick(m.autoSyncGen)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// handleKeyMsg dispatches key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, regardless of mode
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeProject:
		return m.handleProjectKeys(msg)
	case ModeNotes:
		return m.handleNotesKeys(msg)
	case ModeDate:
		return m.handleDateKeys(msg)
	case ModeConfig:
		return m.handleConfigKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeShare, ModeHelp:
		return m.handleOverlayKeys(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Start):
		switch m.container.Timer.State() {
		case domain.TimerPaused:
			// Resuming keeps the paused project; no input needed
			return m, m.startTimer("", "")
		case domain.TimerRunning:
			m.setStatus("Timer already running", true)
			return m, clearStatusLater()
		default:
			m.mode = ModeProject
			m.projectCursor = -1
			m.projectInput.Focus()
			return m, nil
		}

	case key.Matches(msg, m.keys.Pause):
		return m, m.pauseTimer()

	case key.Matches(msg, m.keys.Stop):
		return m, m.stopTimer()

	case key.Matches(msg, m.keys.Delete):
		rec := m.selectedRecord()
		if rec == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmID = rec.ID
		return m, nil

	case key.Matches(msg, m.keys.Notes):
		rec := m.selectedRecord()
		if rec == nil {
			return m, nil
		}
		m.mode = ModeNotes
		m.notesTargetID = rec.ID
		m.notesInput.SetValue(rec.Notes)
		m.notesInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.mode = ModeDate
		m.dateInput.Reset()
		m.dateInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Sync):
		if m.syncing {
			return m, nil
		}
		return m, m.maybeStartSync(true)

	case key.Matches(msg, m.keys.Config):
		m.openConfigForm()
		return m, nil

	case key.Matches(msg, m.keys.Share):
		m.mode = ModeShare
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.loadRecords(), m.loadStats())

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) handleProjectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.projectInput.Reset()
		m.projectInput.Blur()
		return m, nil

	// j/k must type into the field, so the picker only follows arrows
	case msg.String() == "up":
		// -1 means no selection, back on the free-text field
		if m.projectCursor > -1 {
			m.projectCursor--
		}
		return m, nil

	case msg.String() == "down":
		if m.projectCursor < len(m.projects)-1 {
			m.projectCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.projectInput.Blur()
		return m, m.startTimer(m.projectInput.Value(), m.selectedProject())
	}

	var cmd tea.Cmd
	m.projectInput, cmd = m.projectInput.Update(msg)
	return m, cmd
}

// selectedProject returns the known project under the picker cursor,
// empty when the free-text field is focused.
func (m *Model) selectedProject() string {
	if m.projectCursor < 0 || m.projectCursor >= len(m.projects) {
		return ""
	}
	return m.projects[m.projectCursor]
}

func (m *Model) handleNotesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.notesInput.Reset()
		m.notesInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.notesInput.Blur()
		return m, m.saveNotes(m.notesTargetID, m.notesInput.Value())
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

func (m *Model) handleDateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.dateInput.Reset()
		m.dateInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.dateInput.Blur()
		m.mode = ModeNormal
		value := m.dateInput.Value()
		if value == "" {
			m.filterDate = nil
			return m, m.loadRecords()
		}
		date, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			m.setStatus(fmt.Sprintf("Invalid date %q (want YYYY-MM-DD)", value), true)
			return m, clearStatusLater()
		}
		m.filterDate = &date
		m.cursor = 0
		return m, m.loadRecords()
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// openConfigForm seeds the form inputs from the loaded configuration.
func (m *Model) openConfigForm() {
	m.mode = ModeConfig
	m.configFocus = configFieldToken
	if m.config != nil {
		m.tokenInput.SetValue(m.config.Sync.Token)
		m.usernameInput.SetValue(m.config.Sync.Username)
		m.repoInput.SetValue(m.config.Sync.Repo)
		m.configAutoSync = m.config.Sync.AutoSync
	}
	m.focusConfigField()
}

func (m *Model) focusConfigField() {
	m.tokenInput.Blur()
	m.usernameInput.Blur()
	m.repoInput.Blur()
	switch m.configFocus {
	case configFieldToken:
		m.tokenInput.Focus()
	case configFieldUsername:
		m.usernameInput.Focus()
	case configFieldRepo:
		m.repoInput.Focus()
	}
}

func (m *Model) handleConfigKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil

	case "tab", "down":
		m.configFocus = (m.configFocus + 1) % configFieldCount
		m.focusConfigField()
		return m, nil

	case "shift+tab", "up":
		m.configFocus = (m.configFocus + configFieldCount - 1) % configFieldCount
		m.focusConfigField()
		return m, nil

	case " ":
		if m.configFocus == configFieldAutoSync {
			m.configAutoSync = !m.configAutoSync
			return m, nil
		}

	case "enter":
		return m, m.saveConfig(usecase.SetConfigInput{
			Token:    m.tokenInput.Value(),
			Username: m.usernameInput.Value(),
			Repo:     m.repoInput.Value(),
			AutoSync: m.configAutoSync,
		})
	}

	var cmd tea.Cmd
	switch m.configFocus {
	case configFieldToken:
		m.tokenInput, cmd = m.tokenInput.Update(msg)
	case configFieldUsername:
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	case configFieldRepo:
		m.repoInput, cmd = m.repoInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.deleteRecord(m.confirmID)

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		m.confirmID = 0
		return m, nil
	}
	return m, nil
}

func (m *Model) handleOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit),
		key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
