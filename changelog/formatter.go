package changelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Formatter renders changelog lines with links back to the forge
type Formatter struct {
	Resolver CommitResolver
	Logger   *slog.Logger
}

// NewFormatter creates a Formatter. A nil logger falls back to slog.Default
func NewFormatter(resolver CommitResolver, l *slog.Logger) *Formatter {
	return &Formatter{Resolver: resolver, Logger: l}
}

// GetReleaseLine renders the Markdown entry for a single changeset
func (f *Formatter) GetReleaseLine(ctx context.Context, cs Changeset, bump BumpType, options interface{}) (string, error) {
	opts, err := ParseOptions(options)
	if err != nil {
		return "", err
	}

	message, err := f.commitMessage(ctx, cs.Commit)
	if err != nil {
		return "", goerr.Wrap(err, "failed to render release line",
			goerr.V("changeset", cs.ID),
			goerr.V("commit", cs.Commit),
		)
	}

	pr, hasPR := PrNumber(message)
	suffix := Suffix(pr, hasPR, cs.Commit, opts)
	logger.DebugMsg(fmt.Sprintf("rendering %s release line for %s", bump, cs.ID))

	first, rest, _ := strings.Cut(CleanSummary(cs.Summary), "\n")
	var indented []string
	if rest != "" {
		for _, l := range strings.Split(rest, "\n") {
			indented = append(indented, "  "+l)
		}
	}

	return "\n- " + first + suffix + "\n" + strings.Join(indented, "\n"), nil
}

// commitMessage returns the first line of the commit message, or an empty
// string when there is no commit or it cannot be looked up. A failure to
// discover the repository and a cancelled context are returned as errors.
func (f *Formatter) commitMessage(ctx context.Context, hash string) (string, error) {
	if hash == "" || f.Resolver == nil {
		return "", nil
	}

	message, err := f.Resolver.ResolveCommitMessage(ctx, hash)
	if err == nil {
		return message, nil
	}
	if errors.Is(err, ErrRepositoryDiscovery) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return "", err
	}

	f.logger().Warn("Failed to resolve commit, falling back to the commit link",
		slog.String("commit", hash),
		slog.Any("error", err),
	)
	return "", nil
}

// GetDependencyReleaseLine renders the block listing packages that were
// bumped because one of their dependencies changed
func (f *Formatter) GetDependencyReleaseLine(_ context.Context, changesets []Changeset, deps []DependencyBump, options interface{}) (string, error) {
	opts, err := ParseOptions(options)
	if err != nil {
		return "", err
	}
	if len(deps) == 0 {
		return "", nil
	}

	var links []string
	for _, cs := range changesets {
		if cs.Commit != "" {
			links = append(links, CommitLink(opts, cs.Commit))
		}
	}

	header := "- Updated dependencies"
	if len(links) > 0 {
		header += " [" + strings.Join(links, ", ") + "]"
	}
	header += ":"

	lines := []string{header}
	for _, d := range deps {
		lines = append(lines, fmt.Sprintf("  - %s@%s", d.Name, d.NewVersion))
	}
	logger.DebugMsg(fmt.Sprintf("rendered %d dependency updates", len(deps)))

	return strings.Join(lines, "\n"), nil
}

func (f *Formatter) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}
