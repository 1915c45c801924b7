package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	shallowWarningCI = "Repository is a shallow clone, pull request links may be missing for older commits. " +
		"Set fetch-depth: 0 on actions/checkout to fetch the full history."
	shallowWarning = "Repository is a shallow clone, pull request links may be missing for older commits. " +
		"Run git fetch --unshallow to fetch the full history."
)

// CommitResolver looks up the first line of a commit message by hash
type CommitResolver interface {
	ResolveCommitMessage(ctx context.Context, hash string) (string, error)
}

// GitResolver resolves commits from the local repository containing Dir
type GitResolver struct {
	// Dir is where discovery starts; empty means the working directory
	Dir    string
	Logger *slog.Logger
	// Getenv defaults to os.Getenv
	Getenv func(string) string
}

// NewGitResolver creates a GitResolver rooted at dir
func NewGitResolver(dir string, l *slog.Logger) *GitResolver {
	return &GitResolver{Dir: dir, Logger: l}
}

// ResolveCommitMessage discovers the repository and reads the commit's
// message. Discovery failures wrap ErrRepositoryDiscovery, missing commits
// wrap ErrCommitLookup.
func (g *GitResolver) ResolveCommitMessage(ctx context.Context, hash string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r, err := g.discover()
	if err != nil {
		return "", err
	}
	g.warnShallow(r)

	h, err := resolveHash(r, hash)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %w", ErrCommitLookup, hash, err)
	}

	c, err := r.CommitObject(h)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %w", ErrCommitLookup, hash, err)
	}

	logger.DebugMsg(fmt.Sprintf("resolved commit %s", h))
	line, _, _ := strings.Cut(c.Message, "\n")
	return line, nil
}

func (g *GitResolver) discover() (*git.Repository, error) {
	dir := g.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRepositoryDiscovery, err)
		}
		dir = wd
	}

	logger.DebugMsg(fmt.Sprintf("discovering repository from %s", dir))
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoryDiscovery, err)
	}
	return r, nil
}

func (g *GitResolver) warnShallow(r *git.Repository) {
	shallow, err := r.Storer.Shallow()
	if err != nil || len(shallow) == 0 {
		return
	}

	msg := shallowWarning
	if g.getenv("GITHUB_ACTIONS") == "true" {
		msg = shallowWarningCI
	}
	g.logger().Warn(msg, slog.Int("shallow_roots", len(shallow)))
}

func (g *GitResolver) getenv(key string) string {
	if g.Getenv != nil {
		return g.Getenv(key)
	}
	return os.Getenv(key)
}

func (g *GitResolver) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

func resolveHash(r *git.Repository, hash string) (plumbing.Hash, error) {
	if plumbing.IsHash(hash) {
		return plumbing.NewHash(hash), nil
	}
	if !isHex(hash) {
		return plumbing.ZeroHash, fmt.Errorf("not a commit hash: %q", hash)
	}

	h, err := r.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *h, nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
