// Package cli provides the command-line interface for tempo.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/takumin/tempo/internal/app"
)

// Command group IDs.
const (
	groupRecords = "records"
	groupSync    = "sync"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tempo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Track time spent on projects",
		Long: `tempo is a terminal time tracker.

Run it without arguments to open the interactive timer. Start, pause
and stop sessions against a project name; records are stored locally
and can be synced to a GitHub repository for the published dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the interactive timer
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupRecords, Title: "Records:"},
		&cobra.Group{ID: groupSync, Title: "Sync & Sharing:"},
	)

	// Record commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupRecords

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupRecords

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupRecords

	notesCmd := newNotesCommand(c)
	notesCmd.GroupID = groupRecords

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupRecords

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupRecords

	// Sync commands
	syncCmd := newSyncCommand(c)
	syncCmd.GroupID = groupSync

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSync

	shareCmd := newShareCommand(c)
	shareCmd.GroupID = groupSync

	root.AddCommand(
		listCmd,
		statsCmd,
		rmCmd,
		notesCmd,
		exportCmd,
		importCmd,
		syncCmd,
		configCmd,
		shareCmd,
	)

	return root
}
