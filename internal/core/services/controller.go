package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driven"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/logger"
)

// Ensure Controller implements the interface.
var _ driving.Controller = (*Controller)(nil)

// Controller is the session state machine. It owns the query, the
// displayed ranked list and the cursor; every change to them happens in
// Handle on the single goroutine consuming the bus.
type Controller struct {
	bus        driving.EventBus
	corpus     driven.CorpusStore
	dispatcher driving.JobDispatcher

	state  domain.SessionState
	query  []rune
	ranked domain.RankedList
	cursor int

	// lastApplied is the generation of the installed ranked list.
	lastApplied uint64

	selected  bool
	selection int
	err       error
}

// NewController creates a controller in the Running state.
func NewController(
	bus driving.EventBus,
	corpus driven.CorpusStore,
	dispatcher driving.JobDispatcher,
) *Controller {
	return &Controller{
		bus:        bus,
		corpus:     corpus,
		dispatcher: dispatcher,
		state:      domain.StateRunning,
	}
}

// Handle applies one event.
func (c *Controller) Handle(ev domain.Event) {
	switch e := ev.(type) {
	case domain.KeyInput:
		if c.state == domain.StateRunning {
			c.handleKey(e.Key)
		}
	case domain.CorpusAppended:
		c.corpus.Append(e.Lines)
		if c.state == domain.StateRunning {
			c.spawn()
		}
	case domain.RankingComplete:
		c.install(e.List)
	case domain.NoInputAvailable:
		if c.state == domain.StateRunning {
			c.Fail(domain.ErrNoInputAvailable)
		}
	default:
		logger.Debug("controller: ignoring event %T", ev)
	}
}

func (c *Controller) handleKey(key domain.Key) {
	switch key.Kind {
	case domain.KeyChar:
		c.query = append(c.query, key.Rune)
		c.spawn()
	case domain.KeyBackspace:
		if len(c.query) == 0 {
			return
		}
		c.query = c.query[:len(c.query)-1]
		c.spawn()
	case domain.KeyUp:
		// The list is drawn bottom-up, so up moves towards worse matches.
		if c.cursor+1 < c.ranked.Len() {
			c.cursor++
		}
	case domain.KeyDown:
		if c.cursor > 0 {
			c.cursor--
		}
	case domain.KeyEnter:
		if entry, ok := c.ranked.At(c.cursor); ok {
			c.selected = true
			c.selection = entry.Index
		}
		c.exit()
	case domain.KeyEscape:
		c.exit()
	}
}

// install replaces the ranked list unless a newer one is already shown.
// The cursor resets together with the list.
func (c *Controller) install(list domain.RankedList) {
	if list.Generation < c.lastApplied {
		logger.Debug("controller: discarding stale ranking %d (showing %d)", list.Generation, c.lastApplied)
		return
	}
	c.ranked = list
	c.cursor = 0
	c.lastApplied = list.Generation
}

func (c *Controller) spawn() {
	c.dispatcher.Spawn(c.corpus.Snapshot(), string(c.query))
}

func (c *Controller) exit() {
	if c.state != domain.StateExiting {
		logger.Debug("controller: %s -> %s", c.state, domain.StateExiting)
	}
	c.state = domain.StateExiting
}

// Fail moves the session to Exiting with err. The first error wins.
func (c *Controller) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
	c.exit()
}

// Run consumes the bus until the session exits. It is used when no
// renderer drives the controller.
func (c *Controller) Run(ctx context.Context) (domain.Outcome, error) {
	for c.state == domain.StateRunning {
		ev, err := c.bus.Next(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrEventChannelClosed) {
				c.Fail(err)
				break
			}
			return domain.Outcome{}, err
		}
		c.Handle(ev)
	}
	return c.Outcome()
}

// State returns the lifecycle state.
func (c *Controller) State() domain.SessionState {
	return c.state
}

// Query returns the current query.
func (c *Controller) Query() string {
	return string(c.query)
}

// Ranked returns the currently displayed ranked list.
func (c *Controller) Ranked() domain.RankedList {
	return c.ranked
}

// Cursor returns the cursor position within Ranked.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Total returns the live corpus size.
func (c *Controller) Total() int {
	return c.corpus.Len()
}

// Outcome resolves the selection against the live corpus.
// A session that ended without a selection yields a zero Outcome.
func (c *Controller) Outcome() (domain.Outcome, error) {
	if c.err != nil {
		return domain.Outcome{}, c.err
	}
	if !c.selected {
		return domain.Outcome{}, nil
	}
	text, ok := c.corpus.Entry(c.selection)
	if !ok {
		return domain.Outcome{}, fmt.Errorf("%w: selection %d not in corpus", domain.ErrInvalidInput, c.selection)
	}
	return domain.Outcome{Selected: true, Index: c.selection, Text: text}, nil
}
