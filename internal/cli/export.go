package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/takumin/tempo/internal/app"
	"github.com/takumin/tempo/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all records as CSV or JSON",
		Long: `Export all records as CSV or JSON.

Examples:
  # CSV to stdout
  tempo export

  # JSON to a file
  tempo export --format json --output records.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			out, err := c.ExportRecordsUseCase().Execute(cmd.Context(), usecase.ExportRecordsInput{
				Writer: w,
				Format: usecase.ExportFormat(format),
			})
			if err != nil {
				return err
			}

			if outPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", out.RecordCount, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format (csv or json)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from a YAML file",
		Long: `Import records from a YAML file.

Each entry needs a project, a start timestamp, and a duration:

  - project: website
    start: 2024-03-01T09:00:00Z
    duration: 1h30m
    notes: sprint planning`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()

			out, err := c.ImportRecordsUseCase().Execute(cmd.Context(), usecase.ImportRecordsInput{Reader: f})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records\n", out.Imported)
			return nil
		},
	}
}
