package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at the named level. Unknown level
// names fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(level),
		Prefix:          "roster",
		ReportTimestamp: true,
	})
}

// parseLevel converts a level name to log.Level.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
