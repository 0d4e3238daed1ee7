// Package keymap defines keybindings for the TUI and decodes key presses
// into finder keys.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

// KeyMap defines all keybindings for the finder. Printable characters are
// never bound; they always edit the query.
type KeyMap struct {
	// Up moves the cursor towards worse matches.
	Up key.Binding

	// Down moves the cursor towards better matches.
	Down key.Binding

	// Select commits the entry under the cursor.
	Select key.Binding

	// Cancel exits without a selection.
	Cancel key.Binding

	// Backspace deletes the last query character.
	Backspace key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// ShortHelp returns the keybindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

// Decode translates a key press into finder keys. A paste arrives as one
// message with many runes and yields one key per rune. Unbound keys yield
// nothing.
func (k *KeyMap) Decode(msg tea.KeyMsg) []domain.Key {
	switch {
	case key.Matches(msg, k.Up):
		return []domain.Key{{Kind: domain.KeyUp}}
	case key.Matches(msg, k.Down):
		return []domain.Key{{Kind: domain.KeyDown}}
	case key.Matches(msg, k.Select):
		return []domain.Key{{Kind: domain.KeyEnter}}
	case key.Matches(msg, k.Cancel):
		return []domain.Key{{Kind: domain.KeyEscape}}
	case key.Matches(msg, k.Backspace):
		return []domain.Key{{Kind: domain.KeyBackspace}}
	}

	//nolint:exhaustive // only printable input edits the query
	switch msg.Type {
	case tea.KeySpace:
		return []domain.Key{domain.CharKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]domain.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, domain.CharKey(r))
		}
		return keys
	default:
		return nil
	}
}
