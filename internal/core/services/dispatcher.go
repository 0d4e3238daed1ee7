package services

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.JobDispatcher = (*Dispatcher)(nil)

// Dispatcher runs one ranking job per Spawn on its own goroutine and
// publishes the result on the bus.
//
// Jobs are never cancelled. Each result carries the generation it was
// spawned with so the consumer can discard results that finish after a
// newer one.
type Dispatcher struct {
	ranker driving.RankingService
	bus    driving.EventBus
	opts   domain.Options

	// sem caps concurrently running jobs when non-nil.
	sem *semaphore.Weighted

	generation atomic.Uint64
	wg         sync.WaitGroup

	// Stats
	spawned   atomic.Uint64
	completed atomic.Uint64
	dropped   atomic.Uint64
	panicked  atomic.Uint64
	inFlight  atomic.Int64
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithMaxInFlight limits how many jobs rank at the same time.
// Excess jobs wait inside their own goroutine, so Spawn never blocks.
func WithMaxInFlight(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// NewDispatcher creates a dispatcher ranking with opts for the whole session.
func NewDispatcher(
	ranker driving.RankingService,
	bus driving.EventBus,
	opts domain.Options,
	options ...DispatcherOption,
) *Dispatcher {
	d := &Dispatcher{
		ranker: ranker,
		bus:    bus,
		opts:   opts,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// Spawn starts a ranking job and returns its generation immediately.
func (d *Dispatcher) Spawn(snapshot *domain.CorpusSnapshot, query string) uint64 {
	gen := d.generation.Add(1)
	d.spawned.Add(1)
	d.wg.Add(1)
	go d.run(gen, snapshot, query)
	return gen
}

func (d *Dispatcher) run(gen uint64, snapshot *domain.CorpusSnapshot, query string) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.panicked.Add(1)
			logger.Warn("dispatcher: job %d panicked: %v\n%s", gen, r, debug.Stack())
		}
	}()

	if d.sem != nil {
		// Background never cancels, so Acquire only returns once a slot frees.
		_ = d.sem.Acquire(context.Background(), 1)
		defer d.sem.Release(1)
	}

	d.inFlight.Add(1)
	defer d.inFlight.Add(-1)

	list := d.ranker.Rank(snapshot, query, d.opts)
	list.Generation = gen

	err := d.bus.Publish(domain.RankingComplete{List: list})
	switch {
	case errors.Is(err, domain.ErrBusClosed):
		d.dropped.Add(1)
		logger.Debug("dispatcher: bus closed, dropping job %d", gen)
	case err != nil:
		d.dropped.Add(1)
		logger.Warn("dispatcher: publish job %d: %v", gen, err)
	default:
		d.completed.Add(1)
	}
}

// Wait blocks until every spawned job has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Generation returns the generation of the most recently spawned job.
func (d *Dispatcher) Generation() uint64 {
	return d.generation.Load()
}

// DispatcherStats contains dispatcher counters.
type DispatcherStats struct {
	Spawned   uint64
	Completed uint64
	Dropped   uint64
	Panicked  uint64
	InFlight  int64
}

// Stats returns a snapshot of the dispatcher counters.
func (d *Dispatcher) Stats() DispatcherStats {
	return DispatcherStats{
		Spawned:   d.spawned.Load(),
		Completed: d.completed.Load(),
		Dropped:   d.dropped.Load(),
		Panicked:  d.panicked.Load(),
		InFlight:  d.inFlight.Load(),
	}
}
