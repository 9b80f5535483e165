package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// newLogger creates the diagnostics logger. Only warnings and errors are
// shown unless debug is set.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "boykisserfetch",
		Level:           log.WarnLevel,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	if isTerminal(w) {
		logger.SetStyles(pinkStyles())
	}
	return logger
}

// isTerminal checks if the writer is a TTY (for color support).
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// pinkStyles returns charmbracelet/log styles in the fetch accent.
func pinkStyles() *log.Styles {
	pink := lipgloss.Color("#ff69b4")
	muted := lipgloss.Color("8")

	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(muted)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(pink).
		Bold(true)
	styles.Prefix = lipgloss.NewStyle().Foreground(pink)
	styles.Timestamp = lipgloss.NewStyle().Foreground(muted)
	styles.Key = lipgloss.NewStyle().Foreground(pink)
	return styles
}
