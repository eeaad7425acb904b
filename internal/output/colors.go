package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// NoColor reports whether styled output is disabled. Honors the NO_COLOR
// convention (https://no-color.org/) and falls back to fatih/color's
// terminal detection, so piped output stays plain.
func NoColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

// StyleBold is for emphasis such as the run-summary header.
var StyleBold = lipgloss.NewStyle().Bold(true)

// decisionStyles colors the per-path audit labels: green for writes,
// orange for backed-up replacements, gray for paths left alone.
var decisionStyles = map[string]lipgloss.Style{
	"Created":                lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")),
	"Updated (backup saved)": lipgloss.NewStyle().Foreground(lipgloss.Color("#F39C12")),
	"Exists (kept)":          lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6")),
	"Unchanged":              lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6")),
}

// plainStyles returns styles without color for NO_COLOR mode.
func plainStyles() *log.Styles {
	// charmbracelet/log already strips styling on non-TTY writers; the
	// defaults are what we want for the logger configuration.
	return log.DefaultStyles()
}
