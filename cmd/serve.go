package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/LekoArts/changesets-changelog-github-local/changelog"
	"github.com/LekoArts/changesets-changelog-github-local/plugin"
)

func serveRunner(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}

	l := slog.Default()
	p := &plugin.Plugin{
		Functions: changelog.NewFormatter(changelog.NewGitResolver(dir, l), l),
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
	}
	return p.Run(cmd.Context())
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer one plugin request read from stdin",
	RunE:  serveRunner,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("dir", "d", "", "Directory inside the repository (default: working directory)")
}
