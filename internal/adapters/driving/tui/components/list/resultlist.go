// Package list provides the ranked list component for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fzz/internal/core/domain"
)

// RankedList draws ranked entries bottom-up: the best match sits on the
// last line, right above the prompt, and the cursor walks upwards.
type RankedList struct {
	list       domain.RankedList
	cursor     int
	offset     int
	showScores bool
	styles     *styles.Styles
	width      int
	height     int
}

// NewRankedList creates a new ranked list component.
func NewRankedList(s *styles.Styles) *RankedList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RankedList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// SetList installs a ranked list and the controller's cursor.
func (r *RankedList) SetList(list domain.RankedList, cursor int) {
	if list.Generation != r.list.Generation {
		r.offset = 0
	}
	r.list = list
	r.cursor = cursor
	r.scroll()
}

// scroll keeps the cursor inside the visible window.
func (r *RankedList) scroll() {
	rows := r.rows()
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+rows {
		r.offset = r.cursor - rows + 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

func (r *RankedList) rows() int {
	return max(r.height, 1)
}

// View renders exactly height lines, padding the top with blank lines.
func (r *RankedList) View() string {
	rows := r.rows()
	lines := make([]string, rows)

	for row := 0; row < rows; row++ {
		pos := r.offset + row
		entry, ok := r.list.At(pos)
		if !ok {
			break
		}
		// Position 0 is drawn on the bottom line.
		lines[rows-1-row] = r.renderEntry(entry, pos == r.cursor)
	}

	return strings.Join(lines, "\n")
}

func (r *RankedList) renderEntry(entry domain.RankedEntry, selected bool) string {
	text := sanitize(entry.Text)

	suffix := ""
	if r.showScores {
		suffix = fmt.Sprintf("  %.2f", entry.Score)
	}
	maxText := max(r.width-2-len(suffix), 1)
	text = ansi.Truncate(text, maxText, "…")

	if selected {
		return r.styles.Indicator.Render("▌") + " " + r.styles.Selected.Render(text) + r.styles.Muted.Render(suffix)
	}
	return "  " + r.styles.Normal.Render(text) + r.styles.Muted.Render(suffix)
}

// sanitize keeps control characters in entries from moving the terminal
// cursor.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return '?'
		default:
			return r
		}
	}, s)
}

// SetShowScores toggles the score column.
func (r *RankedList) SetShowScores(show bool) {
	r.showScores = show
}

// SetDimensions sets the component dimensions.
func (r *RankedList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
	r.scroll()
}

// List returns the displayed ranked list.
func (r *RankedList) List() domain.RankedList {
	return r.list
}

// Cursor returns the cursor position.
func (r *RankedList) Cursor() int {
	return r.cursor
}

// Offset returns the position of the lowest visible entry.
func (r *RankedList) Offset() int {
	return r.offset
}

// Count returns the number of entries.
func (r *RankedList) Count() int {
	return r.list.Len()
}

// Width returns the current width.
func (r *RankedList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RankedList) Height() int {
	return r.height
}
