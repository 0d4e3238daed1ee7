package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
)

// Ensure EventBus implements the interface.
var _ driving.EventBus = (*EventBus)(nil)

// DefaultBusCapacity is the number of events buffered before Publish blocks.
const DefaultBusCapacity = 256

// EventBus is a buffered multi-producer, single-consumer event channel.
// Events are delivered in the order they were published.
type EventBus struct {
	events    chan domain.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewEventBus creates a bus buffering up to capacity events.
func NewEventBus(capacity int) *EventBus {
	if capacity <= 0 {
		capacity = DefaultBusCapacity
	}
	return &EventBus{
		events: make(chan domain.Event, capacity),
		done:   make(chan struct{}),
	}
}

// Publish sends an event, blocking while the buffer is full.
// Returns domain.ErrBusClosed once Close has been called.
func (b *EventBus) Publish(ev domain.Event) error {
	select {
	case <-b.done:
		return domain.ErrBusClosed
	default:
	}

	select {
	case b.events <- ev:
		return nil
	case <-b.done:
		return domain.ErrBusClosed
	}
}

// Next returns the next event. Events already buffered when the bus is
// closed are still delivered; after that Next returns
// domain.ErrEventChannelClosed.
func (b *EventBus) Next(ctx context.Context) (domain.Event, error) {
	select {
	case ev := <-b.events:
		return ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.done:
		select {
		case ev := <-b.events:
			return ev, nil
		default:
			return nil, domain.ErrEventChannelClosed
		}
	}
}

// Close stops the bus. It is safe to call more than once.
func (b *EventBus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

// Closed returns a channel that is closed when the bus is closed.
func (b *EventBus) Closed() <-chan struct{} {
	return b.done
}
