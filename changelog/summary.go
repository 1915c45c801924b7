package changelog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	prLinePattern     = regexp.MustCompile(`(?im)^\s*(?:pr|pull|pull\s+request):\s*#?\d+`)
	commitLinePattern = regexp.MustCompile(`(?im)^\s*commit:\s*\S+`)
	authorLinePattern = regexp.MustCompile(`(?im)^\s*(?:author|user):\s*@?\S+`)

	// squash merges append "(#N)"; the trailing reference is the PR
	prNumberPattern = regexp.MustCompile(`(?:\(#(\d+)\)|#(\d+))$`)
)

// CleanSummary strips metadata lines injected by changeset generators.
// Only the first pr and commit lines are removed, so applying it twice gives
// the same result only when the summary has at most one of each.
func CleanSummary(summary string) string {
	s := replaceFirst(prLinePattern, summary)
	s = replaceFirst(commitLinePattern, s)
	s = authorLinePattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

// PrNumber reads the pull request number off the first line of a commit
// message. The second return value is false when there is none.
func PrNumber(message string) (int, bool) {
	if message == "" {
		return 0, false
	}

	line, _, _ := strings.Cut(message, "\n")
	match := prNumberPattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return 0, false
	}

	digits := match[1]
	if digits == "" {
		digits = match[2]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
