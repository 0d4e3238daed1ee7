package domain

// KeyKind identifies a key the controller reacts to.
type KeyKind int

const (
	// KeyChar is a printable character; Key.Rune carries it.
	KeyChar KeyKind = iota
	// KeyBackspace removes the last query character.
	KeyBackspace
	// KeyUp moves the cursor towards worse matches.
	KeyUp
	// KeyDown moves the cursor towards better matches.
	KeyDown
	// KeyEnter commits the selection under the cursor.
	KeyEnter
	// KeyEscape aborts without a selection.
	KeyEscape
)

// String returns the string representation of the key kind.
func (k KeyKind) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Key is a single decoded key press.
type Key struct {
	Kind KeyKind
	Rune rune
}

// CharKey is shorthand for a KeyChar press.
func CharKey(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// EventKind identifies the payload carried by an Event.
type EventKind int

const (
	// EventKeyInput carries a key press.
	EventKeyInput EventKind = iota
	// EventCorpusAppended carries a batch of new records.
	EventCorpusAppended
	// EventRankingComplete carries the result of a ranking job.
	EventRankingComplete
	// EventNoInputAvailable signals that stdin is a terminal.
	EventNoInputAvailable
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyInput:
		return "key_input"
	case EventCorpusAppended:
		return "corpus_appended"
	case EventRankingComplete:
		return "ranking_complete"
	case EventNoInputAvailable:
		return "no_input_available"
	default:
		return "unknown"
	}
}

// Event is anything published on the event bus.
type Event interface {
	Kind() EventKind
}

// KeyInput is published by the key reader for every key press.
type KeyInput struct {
	Key Key
}

// Kind implements Event.
func (KeyInput) Kind() EventKind { return EventKeyInput }

// CorpusAppended is published by the ingestion feed for every flushed batch.
type CorpusAppended struct {
	Lines []string
}

// Kind implements Event.
func (CorpusAppended) Kind() EventKind { return EventCorpusAppended }

// RankingComplete is published by a ranking job when it finishes.
type RankingComplete struct {
	List RankedList
}

// Kind implements Event.
func (RankingComplete) Kind() EventKind { return EventRankingComplete }

// NoInputAvailable is published by the ingestion feed instead of reading
// when its input is an interactive terminal.
type NoInputAvailable struct{}

// Kind implements Event.
func (NoInputAvailable) Kind() EventKind { return EventNoInputAvailable }
