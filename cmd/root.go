package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "changelog-github-local",
	Short:         "Changelog lines linking to GitHub pull requests, resolved from local git history",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		asJSON, err := cmd.Flags().GetBool("log-json")
		if err != nil {
			return err
		}

		l, err := newLogger(cmd.ErrOrStderr(), level, asJSON)
		if err != nil {
			return err
		}
		slog.SetDefault(l)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")
}
