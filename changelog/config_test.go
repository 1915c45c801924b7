package changelog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/LekoArts/changesets-changelog-github-local/changelog"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadOptions(t *testing.T) {
	t.Run("json tuple", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{
			"$schema": "https://unpkg.com/@changesets/config/schema.json",
			"changelog": ["changesets-changelog-github-local", { "repo": "LekoArts/test" }],
			"commit": false,
			"baseBranch": "main"
		}`)

		raw, err := changelog.LoadOptions(path)
		gt.NoError(t, err)

		opts, err := changelog.ParseOptions(raw)
		gt.NoError(t, err)
		gt.Value(t, opts.Repo).Equal("LekoArts/test")
	})

	t.Run("yaml tuple", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "changelog:\n  - changesets-changelog-github-local\n  - repo: org/repo\n")

		raw, err := changelog.LoadOptions(path)
		gt.NoError(t, err)

		opts, err := changelog.ParseOptions(raw)
		gt.NoError(t, err)
		gt.Value(t, opts.Repo).Equal("org/repo")
	})

	t.Run("plugin without options", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{"changelog": "changesets-changelog-github-local"}`)

		raw, err := changelog.LoadOptions(path)
		gt.NoError(t, err)
		gt.Value(t, raw).Nil()
	})

	t.Run("changelog disabled", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{"changelog": false}`)

		raw, err := changelog.LoadOptions(path)
		gt.NoError(t, err)
		gt.Value(t, raw).Nil()
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := changelog.LoadOptions(filepath.Join(t.TempDir(), "does-not-exist.json"))
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("failed to read config")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{"changelog": [`)

		_, err := changelog.LoadOptions(path)
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("failed to parse config")
	})
}
