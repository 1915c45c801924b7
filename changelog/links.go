package changelog

import (
	"fmt"
	"strconv"
)

const forgeURL = "https://github.com"

const shortShaLength = 7

// RepoURL returns the web URL of the repository
func RepoURL(o RepoOptions) string {
	return forgeURL + "/" + o.Repo
}

// CommitURL returns the web URL of a commit
func CommitURL(o RepoOptions, sha string) string {
	return RepoURL(o) + "/commit/" + sha
}

// PullURL returns the web URL of a pull request
func PullURL(o RepoOptions, number int) string {
	return RepoURL(o) + "/pull/" + strconv.Itoa(number)
}

// ShortSha abbreviates a commit hash for display
func ShortSha(sha string) string {
	if len(sha) <= shortShaLength {
		return sha
	}
	return sha[:shortShaLength]
}

// CommitLink renders a Markdown link to a commit labelled with its short hash
func CommitLink(o RepoOptions, sha string) string {
	return fmt.Sprintf("[`%s`](%s)", ShortSha(sha), CommitURL(o, sha))
}

// Suffix picks the annotation appended to a release line. A pull request
// wins over a commit; with neither the suffix is empty.
func Suffix(pr int, hasPR bool, sha string, o RepoOptions) string {
	if hasPR {
		return fmt.Sprintf(" ([#%d](%s))", pr, PullURL(o, pr))
	}
	if sha != "" {
		return " (" + CommitLink(o, sha) + ")"
	}
	return ""
}
