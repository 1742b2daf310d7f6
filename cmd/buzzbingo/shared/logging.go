package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a logger with pretty console output on stderr
func SetupLogger(debug bool) *log.Logger {
	return SetupWriterLogger(os.Stderr, debug)
}

// SetupWriterLogger configures a logger on an arbitrary writer. The TUI
// commands log to a file so log lines don't tear the alternate screen.
func SetupWriterLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}
