package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fzz/internal/adapters/driving/tui"
	"github.com/custodia-labs/fzz/internal/core/domain"
)

// openTTY opens the controlling terminal for drawing.
var openTTY = func() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// runTUI draws the session on the controlling terminal until it exits.
func runTUI(ctx context.Context, s *session) (outcome domain.Outcome, err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			outcome, err = domain.Outcome{}, fmt.Errorf("%w: panic: %v", domain.ErrRenderFailure, r)
		}
	}()

	tty, err := openTTY()
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("%w: %w", domain.ErrRenderFailure, err)
	}
	defer tty.Close()

	app, err := tui.NewApp(
		tui.NewPorts(s.bus, s.controller),
		tui.WithShowScores(showScores),
		tui.WithFeedDone(s.feed.Done()),
	)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	if err := app.Run(tea.WithInput(tty), tea.WithOutput(tty), tea.WithAltScreen()); err != nil {
		return domain.Outcome{}, err
	}
	if err := app.Err(); err != nil {
		return domain.Outcome{}, err
	}
	return s.controller.Outcome()
}
