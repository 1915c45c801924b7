package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ghodss/yaml"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/cobra"

	"github.com/LekoArts/changesets-changelog-github-local/changelog"
)

// formatInput mirrors what the host hands over for one release
type formatInput struct {
	Changesets          []changelog.Changeset      `json:"changesets"`
	DependenciesUpdated []changelog.DependencyBump `json:"dependenciesUpdated"`
}

func loadInput(file string) (formatInput, error) {
	var in formatInput
	contents, err := os.ReadFile(file)
	if err != nil {
		return in, goerr.Wrap(err, "failed to read input", goerr.V("file", file))
	}
	if err := yaml.Unmarshal(contents, &in); err != nil {
		return in, goerr.Wrap(err, "failed to parse input", goerr.V("file", file))
	}
	return in, nil
}

func formatRunner(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	inputFile, err := flags.GetString("input")
	if err != nil {
		return err
	}
	if inputFile == "" {
		return goerr.New("no input file given")
	}
	configFile, err := flags.GetString("config")
	if err != nil {
		return err
	}
	repo, err := flags.GetString("repo")
	if err != nil {
		return err
	}
	dir, err := flags.GetString("dir")
	if err != nil {
		return err
	}

	var options interface{}
	if repo != "" {
		options = map[string]interface{}{"repo": repo}
	} else {
		options, err = changelog.LoadOptions(configFile)
		if err != nil {
			return err
		}
	}

	in, err := loadInput(inputFile)
	if err != nil {
		return err
	}

	l := slog.Default()
	f := changelog.NewFormatter(changelog.NewGitResolver(dir, l), l)
	out := cmd.OutOrStdout()

	for _, cs := range in.Changesets {
		bump := changelog.Patch
		if len(cs.Releases) > 0 {
			bump = cs.Releases[0].Type
		}
		line, err := f.GetReleaseLine(cmd.Context(), cs, bump, options)
		if err != nil {
			return err
		}
		fmt.Fprint(out, line)
	}

	block, err := f.GetDependencyReleaseLine(cmd.Context(), in.Changesets, in.DependenciesUpdated, options)
	if err != nil {
		return err
	}
	if block != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, block)
	}
	return nil
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Preview changelog lines for a set of changesets",
	RunE:  formatRunner,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().StringP("input", "i", "", "JSON or YAML file with changesets and dependenciesUpdated")
	formatCmd.Flags().StringP("config", "c", changelog.DefaultConfigFile, "Changesets config file")
	formatCmd.Flags().StringP("repo", "r", "", "Repository as org/repo, overrides the config file")
	formatCmd.Flags().StringP("dir", "d", "", "Directory inside the repository (default: working directory)")
}
