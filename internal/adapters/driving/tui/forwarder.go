package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/logger"
)

// keyForwarder publishes key presses on the bus from its own goroutine.
//
// The update loop is also the bus consumer, so it must never block on
// Publish. push only appends to an unbounded queue; run drains it in
// order.
type keyForwarder struct {
	bus driving.EventBus

	mu    sync.Mutex
	queue []domain.Key
	wake  chan struct{}
}

func newKeyForwarder(bus driving.EventBus) *keyForwarder {
	return &keyForwarder{
		bus:  bus,
		wake: make(chan struct{}, 1),
	}
}

// push queues keys for publishing. It never blocks.
func (f *keyForwarder) push(keys ...domain.Key) {
	if len(keys) == 0 {
		return
	}
	f.mu.Lock()
	f.queue = append(f.queue, keys...)
	f.mu.Unlock()

	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// run publishes queued keys until ctx ends or the bus closes.
func (f *keyForwarder) run(ctx context.Context) {
	for {
		f.mu.Lock()
		batch := f.queue
		f.queue = nil
		f.mu.Unlock()

		for _, k := range batch {
			if err := f.bus.Publish(domain.KeyInput{Key: k}); err != nil {
				if !errors.Is(err, domain.ErrBusClosed) {
					logger.Warn("tui: publish key: %v", err)
				}
				return
			}
		}

		if len(batch) > 0 {
			continue
		}
		select {
		case <-f.wake:
		case <-ctx.Done():
			return
		}
	}
}

// pending returns the number of keys not yet published.
func (f *keyForwarder) pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
