package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/takumin/tempo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeShare:
		content = m.viewShare()
	case ModeConfig:
		content = m.viewConfigForm()
	case ModeNormal, ModeProject, ModeNotes, ModeDate, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the timer, stat tiles and record list.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	b.WriteString(m.viewTimer())
	b.WriteString("\n\n")

	b.WriteString(m.viewTiles())
	b.WriteString("\n")

	if m.filterDate != nil {
		b.WriteString(m.styles.Footer.Render("Filtered: "+m.filterDate.Format("2006-01-02")) + "\n")
	}

	b.WriteString(m.viewRecordList())

	// Dialogs/overlays
	switch m.mode {
	case ModeProject:
		b.WriteString("\n")
		b.WriteString(m.viewProjectPicker())
	case ModeNotes:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("Notes: "))
		b.WriteString(m.notesInput.View())
	case ModeDate:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("Date: "))
		b.WriteString(m.dateInput.View())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeNormal, ModeConfig, ModeShare, ModeHelp:
		// No overlay for these modes
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("tempo")
	if !m.syncing {
		return title
	}
	return title + " " + m.spinner.View() + lipgloss.NewStyle().Foreground(Colors.Muted).Render(" syncing...")
}

// viewTimer renders the state badge, project and live clock.
func (m *Model) viewTimer() string {
	timer := m.container.Timer

	var badge string
	switch timer.State() {
	case domain.TimerRunning:
		badge = m.styles.StateRunning.Render("● RUNNING")
	case domain.TimerPaused:
		badge = m.styles.StatePaused.Render("‖ PAUSED")
	default:
		badge = m.styles.StateIdle.Render("○ IDLE")
	}

	clock := m.styles.TimerClock.Render(domain.FormatClock(timer.Elapsed().Milliseconds()))

	if project := timer.Project(); project != "" {
		return badge + "  " + clock + "  " + m.styles.TimerProject.Render(project)
	}
	return badge + "  " + clock
}

// viewTiles renders the stat tiles from the latest stats snapshot.
func (m *Model) viewTiles() string {
	tile := func(value, label string) string {
		return m.styles.Tile.Render(
			m.styles.TileValue.Render(value) + "\n" + m.styles.TileLabel.Render(label),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		tile(fmt.Sprintf("%d", m.stats.ProjectCount), "projects"),
		tile(m.stats.TotalHours+"h", "total"),
		tile(fmt.Sprintf("%d", m.stats.TodayCount), "today"),
	)
}

func (m *Model) viewRecordList() string {
	if len(m.records) == 0 {
		return m.styles.Footer.Render("No records yet. Press s to start the timer.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.ListTitle.Render("Records"))
	b.WriteString("\n")

	for i, r := range m.records {
		selected := i == m.cursor

		cursor := "  "
		rowStyle := m.styles.RowNormal
		if selected {
			cursor = m.styles.CursorSelected.Render("> ")
			rowStyle = m.styles.RowSelected
		}

		line := fmt.Sprintf("%-20s %s  %s",
			clip(r.Project, 20),
			r.StartedAt().Local().Format("2006-01-02 15:04"),
			domain.FormatDuration(r.Duration),
		)
		b.WriteString(cursor + rowStyle.Render(line))
		if r.Notes != "" {
			b.WriteString("  " + m.styles.RowNotes.Render(clip(r.Notes, 30)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// viewProjectPicker renders the free-text field plus the known
// projects, mirroring the dashboard's dropdown-next-to-input form.
func (m *Model) viewProjectPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.InputPrompt.Render("Project: "))
	b.WriteString(m.projectInput.View())

	if len(m.projects) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("or pick with ↑/↓:"))
		b.WriteString("\n")
		for i, p := range m.projects {
			if i == m.projectCursor {
				b.WriteString(m.styles.CursorSelected.Render("> ") + m.styles.RowSelected.Render(p))
			} else {
				b.WriteString("  " + m.styles.RowNormal.Render(p))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) viewConfirmDialog() string {
	rec := m.selectedRecord()
	label := fmt.Sprintf("record %d", m.confirmID)
	if rec != nil && rec.ID == m.confirmID {
		label = fmt.Sprintf("%s (%s)", rec.Project, domain.FormatDuration(rec.Duration))
	}

	return m.styles.Dialog.Render(
		m.styles.DialogTitle.Render("Delete record") + "\n\n" +
			m.styles.DialogPrompt.Render(fmt.Sprintf("Delete %s? (y/N)", label)),
	)
}

// viewConfigForm renders the sync configuration form.
func (m *Model) viewConfigForm() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Sync configuration"))
	b.WriteString("\n\n")

	field := func(label, view string, focused bool) {
		prompt := "  "
		if focused {
			prompt = m.styles.InputPrompt.Render("> ")
		}
		b.WriteString(prompt + m.styles.InputLabel.Render(label) + view + "\n")
	}

	field("Token", m.tokenInput.View(), m.configFocus == configFieldToken)
	field("Username", m.usernameInput.View(), m.configFocus == configFieldUsername)
	field("Repo", m.repoInput.View(), m.configFocus == configFieldRepo)

	check := "[ ]"
	if m.configAutoSync {
		check = "[x]"
	}
	field("Auto-sync", check+" sync after every change", m.configFocus == configFieldAutoSync)

	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("tab: next field • space: toggle • enter: save • esc: cancel"))
	return b.String()
}

// viewShare renders the dashboard link view.
func (m *Model) viewShare() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Share your dashboard"))
	b.WriteString("\n\n")

	if m.dashboardURL == "" {
		b.WriteString(m.styles.Footer.Render("Sync is not configured yet. Press c to set it up."))
	} else {
		b.WriteString("Anyone with this link sees the published dashboard:\n\n")
		b.WriteString("  " + m.styles.ShareURL.Render(m.dashboardURL))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("esc: back"))
	return b.String()
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("esc: back"))
	return b.String()
}

func (m *Model) viewStatusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return m.styles.StatusError.Render(m.status)
	}
	return m.styles.StatusInfo.Render(m.status)
}

func (m *Model) viewFooter() string {
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// clip shortens s to at most max runes. Byte slicing would split
// multibyte project names mid-rune.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
