// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// NewWithConfig creates a new charm log writing to w with custom config.
// The level follows the global one, capped at info.
func NewWithConfig(w io.Writer, prefix string, caller bool, showTimestamp bool) *log.Logger {
	level := log.GetLevel()
	if level > log.InfoLevel {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       log.TextFormatter,
	})
}

// Progress creates the operator logger used while harvesting. It writes to w
// so the CSV on stdout, if any, stays clean.
func Progress(w io.Writer) *log.Logger {
	logger := NewWithConfig(w, "suggestlog", false, true)
	logger.SetStyles(ProgressStyles())
	return logger
}

// ProgressStyles highlights the counters progress lines carry.
func ProgressStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Keys["speed"] = lipgloss.NewStyle().Faint(true)
	styles.Values["speed"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	styles.Values["sentence"] = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["sentences"] = styles.Values["sentence"]
	return styles
}

// Banner styles the --version output.
func Banner(w io.Writer) *log.Logger {
	logger := NewWithConfig(w, "", false, false)
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)
	return logger
}
