package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/takumin/tempo/internal/app"
	"github.com/takumin/tempo/internal/tui"
)

// launchTUI starts the interactive timer in the alternate screen.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
