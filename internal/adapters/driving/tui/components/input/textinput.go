// Package input provides the query prompt component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/styles"
)

// Prompt renders the query line. It never edits the query itself; the
// controller owns the query and the prompt only mirrors it.
type Prompt struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewPrompt creates a new prompt component.
func NewPrompt(s *styles.Styles) *Prompt {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = s.Prompt
	ti.TextStyle = s.Normal
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = s.Muted
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	p := &Prompt{
		textinput: ti,
		styles:    s,
	}
	p.SetWidth(80)
	return p
}

// View renders the prompt.
func (p *Prompt) View() string {
	return p.textinput.View()
}

// SetValue mirrors the controller's query and parks the cursor at its end.
func (p *Prompt) SetValue(value string) {
	p.textinput.SetValue(value)
	p.textinput.CursorEnd()
}

// Value returns the displayed query.
func (p *Prompt) Value() string {
	return p.textinput.Value()
}

// SetWidth sets the width of the prompt.
func (p *Prompt) SetWidth(width int) {
	p.width = width
	// Account for the "> " prompt and the cursor cell.
	p.textinput.Width = max(width-3, 1)
}

// Width returns the current width.
func (p *Prompt) Width() int {
	return p.width
}
