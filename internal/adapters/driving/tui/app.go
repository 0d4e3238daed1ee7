package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fzz/internal/adapters/driving/tui/views/finder"
	"github.com/custodia-labs/fzz/internal/core/domain"
)

// App is the finder TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Key presses are forwarded to the event bus; bus events come back in as
// messages.EventReceived and are applied to the controller one at a time
// on the update goroutine, which makes Update the bus's only consumer.
type App struct {
	// ports provides access to the bus and controller.
	ports *Ports

	// ctx bounds the bus receive.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	view   *finder.View
	keys   *keyForwarder

	// feedDone is closed once input is fully read.
	feedDone <-chan struct{}

	// err holds the failure that ended the session, if any.
	err error
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// AppOption configures an App.
type AppOption func(*App)

// WithShowScores shows each entry's score next to it.
func WithShowScores(show bool) AppOption {
	return func(a *App) {
		a.view.SetShowScores(show)
	}
}

// WithFeedDone shows a reading marker until done is closed.
func WithFeedDone(done <-chan struct{}) AppOption {
	return func(a *App) {
		a.feedDone = done
	}
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts ...AppOption) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		view:   finder.NewView(s, km),
		keys:   newKeyForwarder(ports.Bus),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.sync()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts pumping events off the bus.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fzz"),
		a.next(),
	)
}

// next waits for the next bus event. Exactly one next command is
// outstanding while the session runs.
func (a *App) next() tea.Cmd {
	bus, ctx := a.ports.Bus, a.ctx
	return func() tea.Msg {
		ev, err := bus.Next(ctx)
		if err != nil {
			return messages.BusClosed{Err: err}
		}
		return messages.EventReceived{Event: ev}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.view.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		a.keys.push(a.keymap.Decode(msg)...)
		return a, nil

	case messages.EventReceived:
		a.ports.Controller.Handle(msg.Event)
		a.sync()
		if a.ports.Controller.State() == domain.StateExiting {
			return a, tea.Quit
		}
		return a, a.next()

	case messages.BusClosed:
		err := msg.Err
		if err == nil || errors.Is(err, domain.ErrEventChannelClosed) {
			err = domain.ErrEventChannelClosed
		}
		a.ports.Controller.Fail(err)
		a.err = err
		return a, tea.Quit
	}

	return a, nil
}

// sync copies controller state into the view.
func (a *App) sync() {
	a.view.Sync(a.ports.Controller)
	if a.feedDone == nil {
		return
	}
	select {
	case <-a.feedDone:
		a.view.SetLoading(false)
	default:
		a.view.SetLoading(true)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	return a.view.View()
}

// Run starts the TUI and blocks until the session ends. Bubbletea
// restores the terminal on every return path. Only render failures are
// returned; the session's own outcome comes from the controller.
func (a *App) Run(opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(a.ctx)
	defer cancel()

	go a.keys.run(ctx)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(a, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRenderFailure, err)
	}
	return nil
}

// Err returns the failure that ended the session, if any.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.view.Ready()
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.view.SetDimensions(width, height)
}
