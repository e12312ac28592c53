// Package logging builds the leveled logger every stage reports through.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Prefix tags every line written by the tool
const Prefix = "mdextract"

// New returns a timestamped logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	logger.SetStyles(styles())
	return logger
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = levelStyle("DEBUG", "63")
	s.Levels[log.InfoLevel] = levelStyle("INFO", "86")
	s.Levels[log.WarnLevel] = levelStyle("WARN", "214")
	s.Levels[log.ErrorLevel] = levelStyle("ERROR", "196")
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	s.Values["err"] = lipgloss.NewStyle().Bold(true)
	return s
}

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		MaxWidth(5).
		Foreground(lipgloss.Color(color))
}
