// Package finder provides the finder view: ranked list, status bar and
// query prompt stacked from top to bottom.
package finder

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
)

// chromeLines is the number of lines taken by the status bar and prompt.
const chromeLines = 2

// View renders the controller's state. It holds no session state of its
// own; Sync copies everything it draws from the controller.
type View struct {
	styles    *styles.Styles
	prompt    *input.Prompt
	list      *list.RankedList
	statusbar *status.Bar

	width  int
	height int
	ready  bool
}

// NewView creates a new finder view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		prompt:    input.NewPrompt(s),
		list:      list.NewRankedList(s),
		statusbar: status.NewBar(s, km),
		width:     80,
		height:    24,
	}
}

// Sync copies the controller's query, ranked list, cursor and counts.
func (v *View) Sync(c driving.Controller) {
	ranked := c.Ranked()
	v.prompt.SetValue(c.Query())
	v.list.SetList(ranked, c.Cursor())
	v.statusbar.SetCounts(ranked.Len(), c.Total())
}

// SetLoading marks whether input is still arriving.
func (v *View) SetLoading(loading bool) {
	v.statusbar.SetLoading(loading)
}

// SetShowScores toggles the score column.
func (v *View) SetShowScores(show bool) {
	v.list.SetShowScores(show)
}

// SetError shows err in the status bar.
func (v *View) SetError(err error) {
	if err == nil {
		v.statusbar.SetMessage("")
		return
	}
	v.statusbar.SetMessage(err.Error())
}

// View renders the finder.
func (v *View) View() string {
	if !v.ready {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.list.View(),
		v.statusbar.View(),
		v.prompt.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.list.SetDimensions(width, max(height-chromeLines, 1))
	v.statusbar.SetWidth(width)
	v.prompt.SetWidth(width)
}

// Ready reports whether the view has been sized.
func (v *View) Ready() bool {
	return v.ready
}

// List returns the list component.
func (v *View) List() *list.RankedList {
	return v.list
}

// Prompt returns the prompt component.
func (v *View) Prompt() *input.Prompt {
	return v.prompt
}

// StatusBar returns the status bar component.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}
