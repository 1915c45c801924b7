package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// newLogger writes to w, which is stderr in practice so stdout stays
// reserved for plugin output
func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, goerr.New("invalid log level", goerr.V("level", level))
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
