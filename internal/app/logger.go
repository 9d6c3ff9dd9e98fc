package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger for one App. Logs always go to logW, never to
// the directive writer. It does not set the global logger.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch formatStr {
	case "json":
		handler = slog.NewJSONHandler(logW, opts)
	default:
		handler = slog.NewTextHandler(logW, opts)
	}

	return slog.New(handler).With("component", "weldlink")
}
