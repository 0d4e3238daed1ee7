// Package messages defines Bubbletea message types for the TUI.
// Messages carry event bus traffic into the Elm update loop.
package messages

import (
	"github.com/custodia-labs/fzz/internal/core/domain"
)

// EventReceived carries one event taken off the bus.
type EventReceived struct {
	Event domain.Event
}

// BusClosed reports that the bus can no longer deliver events.
type BusClosed struct {
	Err error
}

// Error implements error so the message can be returned as a failure.
func (m BusClosed) Error() string {
	if m.Err == nil {
		return domain.ErrEventChannelClosed.Error()
	}
	return m.Err.Error()
}

// Unwrap returns the underlying error.
func (m BusClosed) Unwrap() error {
	return m.Err
}
