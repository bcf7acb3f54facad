package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/takumin/tempo/internal/app"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/usecase"
)

// newSyncCommand creates the sync command.
func newSyncCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Upload all records to the configured GitHub repository",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SyncRecordsUseCase().Execute(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrSyncNotConfigured) {
					return fmt.Errorf("sync is not configured; run 'tempo config set' first")
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Synced %d records\n", out.RecordCount)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dashboard: %s\n", out.DashboardURL)
			return nil
		},
	}
}

// newConfigCommand creates the config command with show/set subcommands.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the sync configuration",
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigSetCommand(c))

	return cmd
}

func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", out.Path)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Username:    %s\n", valueOrUnset(out.Config.Sync.Username))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Repository:  %s\n", valueOrUnset(out.Config.Sync.Repo))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Token:       %s\n", maskToken(out.Config.Sync.Token))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Auto-sync:   %t\n", out.Config.Sync.AutoSync)
			if out.DashboardURL != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dashboard:   %s\n", out.DashboardURL)
			}
			return nil
		},
	}
}

func newConfigSetCommand(c *app.Container) *cobra.Command {
	var in usecase.SetConfigInput

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the sync credentials",
		Long: `Set the sync credentials.

Example:
  tempo config set --token ghp_xxx --username alice --repo hours --auto-sync`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SetConfigUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved.")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dashboard: %s\n", out.DashboardURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Token, "token", "", "GitHub personal access token")
	cmd.Flags().StringVar(&in.Username, "username", "", "GitHub username")
	cmd.Flags().StringVar(&in.Repo, "repo", "", "GitHub repository name")
	cmd.Flags().BoolVar(&in.AutoSync, "auto-sync", false, "Sync automatically after each change")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("repo")

	return cmd
}

// newShareCommand creates the share command.
func newShareCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print the shareable dashboard URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if out.DashboardURL == "" {
				return fmt.Errorf("sync is not configured; run 'tempo config set' first")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.DashboardURL)
			return nil
		},
	}
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// maskToken hides all but the last four characters of the token.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
