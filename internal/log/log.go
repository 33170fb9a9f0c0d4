// Package log configures structured logging for the dashboard using log/slog.
package log

import (
	"log/slog"
	"os"
)

// Setup configures the default slog logger.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - debug mode:   DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func Setup(debug, quiet bool) {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case debug:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
