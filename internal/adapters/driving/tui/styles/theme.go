// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette of the finder.
type Theme struct {
	// Primary is the accent used for the prompt and the cursor row.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for scores, counts and hints.
	Muted lipgloss.Color

	// Highlight marks the cursor indicator.
	Highlight lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// StatusBackground is the status bar background.
	StatusBackground lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#7C3AED"), // Purple
		Foreground:       lipgloss.Color("#CDD6F4"), // Light gray
		Muted:            lipgloss.Color("#6C7086"), // Medium gray
		Highlight:        lipgloss.Color("#F9E2AF"), // Yellow
		Error:            lipgloss.Color("#F38BA8"), // Red
		StatusBackground: lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Prompt renders the "> " before the query.
	Prompt lipgloss.Style

	// Normal renders regular entries.
	Normal lipgloss.Style

	// Muted renders less important text.
	Muted lipgloss.Style

	// Selected renders the entry under the cursor.
	Selected lipgloss.Style

	// Indicator renders the cursor marker.
	Indicator lipgloss.Style

	// Error renders error messages.
	Error lipgloss.Style

	// StatusBar renders the counts line.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Indicator: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.StatusBackground),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
