// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/styles"
)

// Bar displays match counts and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	matched int
	total   int
	loading bool
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Too narrow for hints.
		return s.styles.StatusBar.Render(left)
	}

	return s.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

// renderLeft renders "matched/total", a reading marker while input is
// still arriving, and an optional message.
func (s *Bar) renderLeft() string {
	counts := fmt.Sprintf("  %d/%d", s.matched, s.total)
	if s.loading {
		counts += " …"
	}
	if s.message != "" {
		return counts + "  " + s.styles.Error.Render(s.message)
	}
	return counts
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(hints, " · ")
}

// Hints returns the bindings shown on the right.
func (s *Bar) Hints() []key.Binding {
	return s.keymap.ShortHelp()
}

// SetCounts sets the matched and total entry counts.
func (s *Bar) SetCounts(matched, total int) {
	s.matched = matched
	s.total = total
}

// Counts returns the matched and total entry counts.
func (s *Bar) Counts() (int, int) {
	return s.matched, s.total
}

// SetLoading marks whether input is still being read.
func (s *Bar) SetLoading(loading bool) {
	s.loading = loading
}

// Loading reports whether input is still being read.
func (s *Bar) Loading() bool {
	return s.loading
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
