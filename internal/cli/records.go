package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/takumin/tempo/internal/app"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/usecase"
)

// newListCommand creates the list command for showing records.
func newListCommand(c *app.Container) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		Long: `List recorded sessions, most recent first.

Examples:
  # All records
  tempo list

  # Records for one day
  tempo list --date 2024-03-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListRecordsInput{}
			if dateStr != "" {
				date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", dateStr)
				}
				input.Date = &date
			}

			out, err := c.ListRecordsUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if len(out.Records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No records.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tPROJECT\tSTARTED\tDURATION\tNOTES")
			for _, r := range out.Records {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					r.ID,
					r.Project,
					r.StartedAt().Local().Format("2006-01-02 15:04"),
					domain.FormatDuration(r.Duration),
					truncate(r.Notes, 40),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Only records from this day (YYYY-MM-DD)")

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.GetStatsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			s := out.Stats
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Projects:      %d\n", s.ProjectCount)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total hours:   %sh\n", s.TotalHours)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Records today: %d\n", s.TodayCount)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Records total: %d\n", s.RecordCount)
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting records.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}

			out, err := c.DeleteRecordUseCase().Execute(cmd.Context(), usecase.DeleteRecordInput{ID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d\n", id)
			maybeSyncAfterMutation(cmd, c, out.AutoSync)
			return nil
		},
	}
}

// newNotesCommand creates the notes command for annotating records.
func newNotesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "notes <id> <text>",
		Short: "Set the notes on a record",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}

			out, err := c.EditNotesUseCase().Execute(cmd.Context(), usecase.EditNotesInput{
				ID:    id,
				Notes: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated notes on record %d\n", id)
			maybeSyncAfterMutation(cmd, c, out.AutoSync)
			return nil
		},
	}
}

// maybeSyncAfterMutation runs a best-effort sync when auto-sync asked
// for one. The mutation already succeeded, so a sync failure is only
// reported, never returned.
func maybeSyncAfterMutation(cmd *cobra.Command, c *app.Container, autoSync bool) {
	if !autoSync {
		return
	}
	if _, err := c.SyncRecordsUseCase().Execute(cmd.Context()); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: auto-sync failed: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Synced to GitHub.")
}

// truncate shortens s to at most max runes. Byte slicing would split
// multibyte notes mid-rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
