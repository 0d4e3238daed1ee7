package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fzz/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/services"
	"github.com/custodia-labs/fzz/internal/logger"
)

// session wires the components of one finder run.
type session struct {
	bus        *services.EventBus
	corpus     *memory.CorpusStore
	dispatcher *services.Dispatcher
	feed       *services.Feed
	controller *services.Controller
}

func newSession(in io.Reader, opts domain.Options, interactive bool) *session {
	bus := services.NewEventBus(0)
	corpus := memory.NewCorpusStore(opts.Delimiter)
	dispatcher := services.NewDispatcher(rankingService, bus, opts)

	return &session{
		bus:        bus,
		corpus:     corpus,
		dispatcher: dispatcher,
		feed: services.NewFeed(in, bus,
			services.WithDelimiter(opts.Delimiter),
			services.WithInteractive(interactive),
		),
		controller: services.NewController(bus, corpus, dispatcher),
	}
}

// close stops every producer and waits for in-flight ranking jobs.
func (s *session) close() {
	s.bus.Close()
	s.dispatcher.Wait()
	stats := s.dispatcher.Stats()
	logger.Debug("finder: jobs spawned=%d completed=%d dropped=%d", stats.Spawned, stats.Completed, stats.Dropped)
}

func runFinder(cmd *cobra.Command, _ []string) error {
	if rankingService == nil {
		return errors.New("ranking service not configured")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	interactive := isTerminal(in)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	s := newSession(in, opts, interactive)
	logger.Section("finder")
	s.feed.Start(ctx)

	var outcome domain.Outcome
	if interactive {
		// Nothing to draw: the feed reports NoInputAvailable straight away.
		outcome, err = s.controller.Run(ctx)
	} else {
		if logFile == "" {
			logger.SetOutput(io.Discard)
		}
		outcome, err = runTUI(ctx, s)
	}

	cancel()
	s.close()
	if err != nil {
		return err
	}

	if outcome.Selected {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), outcome.Text); err != nil {
			return fmt.Errorf("writing selection: %w", err)
		}
	}
	return nil
}
