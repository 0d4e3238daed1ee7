package driving

import (
	"context"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

// EventBus is the single multi-producer, single-consumer event channel.
type EventBus interface {
	// Publish sends an event. Returns domain.ErrBusClosed after Close.
	Publish(ev domain.Event) error

	// Next blocks until an event arrives, the context ends, or the bus is
	// closed and drained (domain.ErrEventChannelClosed).
	Next(ctx context.Context) (domain.Event, error)
}

// Controller is the session state machine driven by bus events.
// All methods must be called from the single consuming goroutine.
type Controller interface {
	// Handle applies one event.
	Handle(ev domain.Event)

	// Fail moves the session to Exiting with a fatal error.
	Fail(err error)

	// State returns the lifecycle state.
	State() domain.SessionState

	// Query returns the current query.
	Query() string

	// Ranked returns the currently displayed ranked list.
	Ranked() domain.RankedList

	// Cursor returns the cursor position within Ranked.
	Cursor() int

	// Total returns the live corpus size.
	Total() int

	// Outcome resolves the final selection against the live corpus.
	Outcome() (domain.Outcome, error)
}

// JobDispatcher runs ranking off the consuming goroutine.
type JobDispatcher interface {
	// Spawn starts a ranking job for the snapshot and query and returns its
	// generation. It never blocks on the ranking itself; the result arrives
	// later as a domain.RankingComplete event.
	Spawn(snapshot *domain.CorpusSnapshot, query string) uint64
}
