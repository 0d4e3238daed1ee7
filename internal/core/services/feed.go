package services

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/logger"
)

// Feed defaults.
const (
	DefaultFlushInterval = 100 * time.Millisecond
	DefaultMaxBatch      = 10000

	// maxRecordSize bounds a single record; longer records fail the feed.
	maxRecordSize = 16 * 1024 * 1024
)

// Feed reads delimited records from an input stream in the background and
// publishes them on the bus in batches.
//
// A batch is flushed as one domain.CorpusAppended when the flush interval
// elapses with records pending, when it reaches the maximum batch size, or
// at end of input. An interactive input is never read; the feed publishes
// domain.NoInputAvailable instead.
type Feed struct {
	r           io.Reader
	bus         driving.EventBus
	delimiter   rune
	interactive bool
	interval    time.Duration
	maxBatch    int

	progress rate.Sometimes
	records  int

	startOnce sync.Once
	done      chan struct{}
	err       error
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithDelimiter sets the record delimiter.
func WithDelimiter(r rune) FeedOption {
	return func(f *Feed) {
		f.delimiter = r
	}
}

// WithInteractive marks the input as an interactive terminal.
func WithInteractive(interactive bool) FeedOption {
	return func(f *Feed) {
		f.interactive = interactive
	}
}

// WithFlushInterval sets how long a partial batch may wait.
func WithFlushInterval(d time.Duration) FeedOption {
	return func(f *Feed) {
		if d > 0 {
			f.interval = d
		}
	}
}

// WithMaxBatch sets the batch size that forces an immediate flush.
func WithMaxBatch(n int) FeedOption {
	return func(f *Feed) {
		if n > 0 {
			f.maxBatch = n
		}
	}
}

// NewFeed creates a feed reading r and publishing on bus.
func NewFeed(r io.Reader, bus driving.EventBus, opts ...FeedOption) *Feed {
	f := &Feed{
		r:         r,
		bus:       bus,
		delimiter: domain.DefaultDelimiter,
		interval:  DefaultFlushInterval,
		maxBatch:  DefaultMaxBatch,
		progress:  rate.Sometimes{Interval: time.Second},
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Interactive reports whether the feed treats its input as a terminal.
func (f *Feed) Interactive() bool {
	return f.interactive
}

// Start launches the feed goroutine. Later calls do nothing.
func (f *Feed) Start(ctx context.Context) {
	f.startOnce.Do(func() {
		go f.run(ctx)
	})
}

// Done is closed when the feed goroutine has exited.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// Err returns the read error that stopped the feed, if any.
// It is only meaningful after Done is closed.
func (f *Feed) Err() error {
	return f.err
}

// Records returns the number of records published so far.
// It is only meaningful after Done is closed.
func (f *Feed) Records() int {
	return f.records
}

func (f *Feed) run(ctx context.Context) {
	defer close(f.done)

	if f.interactive {
		logger.Debug("feed: input is a terminal, nothing to read")
		if err := f.bus.Publish(domain.NoInputAvailable{}); err != nil {
			logger.Debug("feed: %v", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	records := make(chan string)
	readErr := make(chan error, 1)
	go f.scan(ctx, records, readErr)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	var batch []string
	for {
		select {
		case rec, ok := <-records:
			if !ok {
				f.flush(batch)
				f.err = <-readErr
				if f.err != nil {
					logger.Warn("feed: read stopped: %v", f.err)
				}
				logger.Debug("feed: end of input after %d records", f.records)
				return
			}
			batch = append(batch, rec)
			if len(batch) >= f.maxBatch {
				if !f.flush(batch) {
					return
				}
				batch = nil
			}
		case <-ticker.C:
			if len(batch) > 0 {
				if !f.flush(batch) {
					return
				}
				batch = nil
			}
		case <-ctx.Done():
			return
		}
	}
}

// flush publishes a batch. It reports false once the bus is closed.
func (f *Feed) flush(batch []string) bool {
	if len(batch) == 0 {
		return true
	}
	if err := f.bus.Publish(domain.CorpusAppended{Lines: batch}); err != nil {
		if !errors.Is(err, domain.ErrBusClosed) {
			logger.Warn("feed: publish batch: %v", err)
		}
		return false
	}
	f.records += len(batch)
	f.progress.Do(func() {
		logger.Debug("feed: %d records ingested", f.records)
	})
	return true
}

// scan reads records until end of input and closes out.
func (f *Feed) scan(ctx context.Context, out chan<- string, errc chan<- error) {
	defer close(out)

	scanner := newRecordScanner(f.r, f.delimiter)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctx.Done():
			errc <- ctx.Err()
			return
		}
	}
	if err := scanner.Err(); err != nil {
		errc <- fmt.Errorf("scan input: %w", err)
		return
	}
	errc <- nil
}

// ReadRecords reads every record from r at once. It is the batch
// counterpart of Feed for non-interactive commands.
func ReadRecords(r io.Reader, delimiter rune) ([]string, error) {
	var records []string
	scanner := newRecordScanner(r, delimiter)
	for scanner.Scan() {
		records = append(records, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("scan input: %w", err)
	}
	return records, nil
}

func newRecordScanner(r io.Reader, delimiter rune) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	scanner.Split(SplitRecords(delimiter))
	return scanner
}

// SplitRecords returns a bufio.SplitFunc splitting on delimiter.
// With the newline delimiter a trailing carriage return is dropped, so
// CRLF input yields the same records as LF input. A final record without
// a delimiter is still returned; an empty trailing record is not.
func SplitRecords(delimiter rune) bufio.SplitFunc {
	delim := domain.Options{Delimiter: delimiter}.DelimiterBytes()
	stripCR := delimiter == '\n'

	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.Index(data, delim); i >= 0 {
			return i + len(delim), trim(data[:i], stripCR), nil
		}
		if atEOF {
			return len(data), trim(data, stripCR), nil
		}
		return 0, nil, nil
	}
}

func trim(rec []byte, stripCR bool) []byte {
	if stripCR && len(rec) > 0 && rec[len(rec)-1] == '\r' {
		return rec[:len(rec)-1]
	}
	return rec
}
