package changelog

import "errors"

var (
	// ErrMissingRepo is returned when the options carry no repo
	ErrMissingRepo = errors.New(`please provide a repo to this changelog generator like this:
"changelog": ["changesets-changelog-github-local", { "repo": "org/repo" }]`)

	// ErrInvalidRepoFormat is returned when repo is not an "org/repo" string
	ErrInvalidRepoFormat = errors.New(`the repo option must be a string of the form "org/repo"`)

	// ErrRepositoryDiscovery is returned when no local repository can be opened
	ErrRepositoryDiscovery = errors.New("repository discovery failed")

	// ErrCommitLookup is returned when a commit hash cannot be resolved
	ErrCommitLookup = errors.New("commit lookup failed")
)
