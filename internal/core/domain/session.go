package domain

// SessionState is the controller's lifecycle state.
type SessionState int

const (
	// StateRunning accepts keys and renders.
	StateRunning SessionState = iota
	// StateExiting is terminal; the render loop stops.
	StateExiting
)

// String returns the string representation of the state.
func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Outcome is what a finished session hands back to its caller.
type Outcome struct {
	// Selected reports whether the user committed a selection.
	Selected bool

	// Index is the original index of the selection.
	Index int

	// Text is the selected entry resolved against the live corpus.
	Text string
}
