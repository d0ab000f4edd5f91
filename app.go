package trui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/petermattis/goid"
	"golang.org/x/sync/errgroup"

	"github.com/trui-go/trui/internal/debug"
)

// App runs a view function against a terminal.
//
// Run starts three goroutines next to the render loop, which runs on the
// calling goroutine: the logic task, which owns the data and the view
// tree; the input reader; and a relay that forwards async wakes to the
// logic task. Only the render loop touches widgets.
type App[T, A any] struct {
	data     *T
	logic    func(data *T) View[T, A]
	onAction func(A)
	settings settings
	running  atomic.Bool

	// Owned by the render goroutine while Run is active.
	term       Terminal
	buf        *Buffer
	cx         *Cx
	root       *Pod
	rootId     Id
	rootState  widgetState
	cxState    cxState
	size       Size
	mouse      Point
	hasMouse   bool
	renderGoid int64

	events    chan Event
	requests  chan taskRequest
	responses chan renderResponse[T, A]
	returns   chan renderReturn[T, A]
}

// New creates an app that shows logic(data). Data is only accessed from
// the logic task once Run starts.
func New[T, A any](data *T, logic func(data *T) View[T, A], opts ...Option) (*App[T, A], error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := debug.ParseLevel(s.cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &App[T, A]{data: data, logic: logic, settings: s}, nil
}

// OnAction registers f to receive actions that reach the root. f runs on
// the logic task and may access the data.
func (a *App[T, A]) OnAction(f func(A)) {
	a.onAction = f
}

// Run shows the app until a quit key is pressed or ctx ends. The terminal
// is restored before Run returns.
func (a *App[T, A]) Run(ctx context.Context) (err error) {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAppRunning
	}
	defer a.running.Store(false)

	cfg := a.settings.cfg
	if cfg.LogFile != "" {
		level, _ := debug.ParseLevel(cfg.LogLevel)
		if err := debug.Init(cfg.LogFile, level); err != nil {
			return err
		}
		defer debug.Close()
	}

	term, reader, err := a.open()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, reader.Close()) }()

	if err := a.setupTerminal(term); err != nil {
		return errors.Join(err, a.restoreTerminal(term))
	}
	defer func() { err = errors.Join(err, a.restoreTerminal(term)) }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	wake := make(chan IdPath, cfg.WakeQueueSize)
	a.reset(ctx, term, wake)

	task := &logicTask[T, A]{
		requests:  a.requests,
		responses: a.responses,
		returns:   a.returns,
		events:    a.events,
		data:      a.data,
		logic:     a.logic,
		onAction:  a.onAction,
		debounce:  cfg.Debounce,
		pending:   idSet{},
	}

	// The first frame is drawn without waiting for input.
	a.events <- StartEvent{}

	g.Go(func() error { return task.run(ctx) })
	g.Go(func() error {
		relayWakes(ctx, wake, a.requests)
		return nil
	})
	g.Go(func() error {
		readInput(ctx, reader, a.events, &a.settings)
		return nil
	})

	debug.Infof("app: running, %s", term.Caps())
	loopErr := a.loop(ctx)
	cancel()
	return errors.Join(loopErr, g.Wait())
}

func (a *App[T, A]) open() (Terminal, EventReader, error) {
	term, reader := a.settings.term, a.settings.reader
	if term == nil {
		t, err := NewANSITerminal(os.Stdout, os.Stdin)
		if err != nil {
			return nil, nil, err
		}
		term = t
	}
	if reader == nil {
		r, err := NewEventReader(os.Stdin)
		if err != nil {
			return nil, nil, err
		}
		reader = r
	}
	return term, reader, nil
}

// reset prepares the render loop state for one Run.
func (a *App[T, A]) reset(ctx context.Context, term Terminal, wake chan<- IdPath) {
	cfg := a.settings.cfg
	a.term = term
	a.buf = NewBuffer(0, 0)
	a.cx = newCx(ctx, wake)
	a.root, a.rootId = nil, 0
	a.rootState = widgetState{}
	a.cxState = cxState{}
	a.size = Size{}
	a.hasMouse = false
	a.renderGoid = goid.Get()

	a.events = make(chan Event, cfg.EventQueueSize)
	a.requests = make(chan taskRequest, cfg.EventQueueSize)
	a.responses = make(chan renderResponse[T, A], 1)
	a.returns = make(chan renderReturn[T, A], 1)
}

func (a *App[T, A]) setupTerminal(term Terminal) error {
	cfg := a.settings.cfg
	if err := term.EnterRawMode(); err != nil {
		return err
	}
	steps := []func() error{}
	if cfg.AltScreen {
		steps = append(steps, term.EnterAltScreen)
	}
	steps = append(steps, term.HideCursor)
	if cfg.Mouse {
		steps = append(steps, term.EnableMouse)
	}
	if cfg.FocusReporting {
		steps = append(steps, term.EnableFocusReporting)
	}
	steps = append(steps, term.Clear)
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// restoreTerminal undoes setupTerminal. Every step runs even if an earlier
// one fails.
func (a *App[T, A]) restoreTerminal(term Terminal) error {
	cfg := a.settings.cfg
	var errs []error
	if cfg.FocusReporting {
		errs = append(errs, term.DisableFocusReporting())
	}
	if cfg.Mouse {
		errs = append(errs, term.DisableMouse())
	}
	errs = append(errs, term.ShowCursor())
	if cfg.AltScreen {
		errs = append(errs, term.ExitAltScreen())
	}
	errs = append(errs, term.ExitRawMode())
	return errors.Join(errs...)
}

// assertRenderGoroutine panics when widget state is touched from a
// goroutine other than the one running the render loop.
func (a *App[T, A]) assertRenderGoroutine() {
	if a.renderGoid != 0 && goid.Get() != a.renderGoid {
		panic("trui: widget tree accessed outside the render goroutine")
	}
}
