package domain

import "errors"

// Domain errors represent session failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoInputAvailable indicates stdin is an interactive terminal.
	// There is nothing to rank, so the session ends before rendering.
	ErrNoInputAvailable = errors.New("no input available: stdin is a terminal")

	// ErrRenderFailure indicates the terminal could not be opened or drawn to.
	ErrRenderFailure = errors.New("unable to draw")

	// ErrEventChannelClosed indicates every event producer is gone while the
	// controller still expects events.
	ErrEventChannelClosed = errors.New("event channel closed")

	// ErrBusClosed is returned by Publish after the bus has been closed.
	// Producers treat it as an expected shutdown race.
	ErrBusClosed = errors.New("event bus closed")

	// ErrInvalidOptions indicates malformed finder options.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
