package changelog

import (
	"fmt"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var repoPattern = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// RepoOptions holds validated plugin options
type RepoOptions struct {
	Repo string `json:"repo"`
}

// ParseOptions validates the untyped options handed over by the host.
// A missing repo matches ErrMissingRepo, a malformed one ErrInvalidRepoFormat.
func ParseOptions(raw interface{}) (RepoOptions, error) {
	var repo interface{}
	switch v := raw.(type) {
	case RepoOptions:
		repo = v.Repo
	case *RepoOptions:
		if v != nil {
			repo = v.Repo
		}
	case map[string]interface{}:
		repo = v["repo"]
	case map[string]string:
		repo = v["repo"]
	}

	switch r := repo.(type) {
	case nil:
		return RepoOptions{}, goerr.Wrap(ErrMissingRepo, "invalid changelog options")
	case string:
		if r == "" {
			return RepoOptions{}, goerr.Wrap(ErrMissingRepo, "invalid changelog options")
		}
		if !repoPattern.MatchString(r) {
			return RepoOptions{}, goerr.Wrap(ErrInvalidRepoFormat, "invalid changelog options", goerr.V("repo", r))
		}
		return RepoOptions{Repo: r}, nil
	default:
		return RepoOptions{}, goerr.Wrap(ErrInvalidRepoFormat, "invalid changelog options",
			goerr.V("repo", fmt.Sprintf("%v", r)),
			goerr.V("type", fmt.Sprintf("%T", r)),
		)
	}
}
