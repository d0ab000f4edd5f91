package trui

import (
	"context"
	"time"

	"github.com/trui-go/trui/internal/debug"
)

type requestKind uint8

const (
	reqMessages requestKind = iota
	reqWake
	reqRender
)

// taskRequest is sent to the logic task by the render loop and the wake
// relay.
type taskRequest struct {
	kind     requestKind
	messages []Message
	path     IdPath
	delay    bool
}

// renderResponse hands a fresh view to the render loop together with the
// previous view and the state it left behind.
type renderResponse[T, A any] struct {
	prev  View[T, A]
	view  View[T, A]
	state any
}

// renderReturn gives the view back after reconciliation, together with the
// nodes still waiting for async work.
type renderReturn[T, A any] struct {
	view    View[T, A]
	state   any
	id      Id
	pending idSet
}

// uiState tracks where the render loop is with respect to async work.
type uiState uint8

const (
	// uiIdle means no render is outstanding.
	uiIdle uiState = iota
	// uiDebouncing means a render waits for pending async work or the
	// debounce deadline, whichever comes first.
	uiDebouncing
	// uiWoken means the render loop was woken and a render will follow.
	uiWoken
)

// logicTask owns the application data and the view tree. The view tree
// leaves the task only for the duration of a render round trip.
type logicTask[T, A any] struct {
	requests  <-chan taskRequest
	responses chan<- renderResponse[T, A]
	returns   <-chan renderReturn[T, A]
	events    chan<- Event

	data     *T
	logic    func(data *T) View[T, A]
	onAction func(A)
	debounce time.Duration

	view    View[T, A]
	state   any
	rootId  Id
	pending idSet
	ui      uiState
}

func (t *logicTask[T, A]) run(ctx context.Context) error {
	var (
		timer    *time.Timer
		deadline <-chan time.Time
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer, deadline = nil, nil
		}
	}
	defer stopTimer()

	render := func() error {
		stopTimer()
		return t.render(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			timer, deadline = nil, nil
			debug.Debugf("task: render after delay")
			if err := render(); err != nil {
				return ignoreCanceled(ctx, err)
			}
		case req := <-t.requests:
			var err error
			switch req.kind {
			case reqMessages:
				for _, m := range req.messages {
					t.handle(m.Path, t.deliver(m.Path, m.Body))
				}
			case reqWake:
				err = t.wake(req.path, render)
			case reqRender:
				if !req.delay || len(t.pending) == 0 {
					debug.Debugf("task: render without delay")
					err = render()
				} else {
					debug.Debugf("task: %d pending async, delay rendering", len(t.pending))
					t.ui = uiDebouncing
					timer = time.NewTimer(t.debounce)
					deadline = timer.C
				}
			}
			if err != nil {
				return ignoreCanceled(ctx, err)
			}
		}
	}
}

// wake delivers AsyncWake to the node at path. A rebuild request from an
// idle UI wakes the render loop; a debouncing render goes ahead as soon as
// the last pending node has reported.
func (t *logicTask[T, A]) wake(path IdPath, render func() error) error {
	res := t.deliver(path, AsyncWake{})
	if res.Kind == MessageRequestRebuild && t.ui == uiIdle {
		select {
		case t.events <- WakeEvent{}:
		default:
			// A full queue renders anyway once it drains.
		}
		t.ui = uiWoken
	}
	t.handle(path, res)
	if id, ok := path.Last(); ok {
		t.pending.remove(id)
	}
	if len(t.pending) == 0 && t.ui == uiDebouncing {
		return render()
	}
	return nil
}

// deliver routes msg to the node at path. The first element is the root.
func (t *logicTask[T, A]) deliver(path IdPath, msg any) MessageResult[A] {
	if t.view == nil || len(path) == 0 || path[0] != t.rootId {
		return Stale[A](msg)
	}
	return t.view.Message(path[1:], t.state, msg, t.data)
}

func (t *logicTask[T, A]) handle(path IdPath, res MessageResult[A]) {
	switch res.Kind {
	case MessageAction:
		if t.onAction != nil {
			t.onAction(res.Action)
			return
		}
		debug.Infof("task: unhandled action %v from %s", res.Action, path)
	case MessageStale:
		debug.Debugf("task: stale message %T for %s", res.Message, path)
	}
}

// render runs the view function and lends the view tree to the render loop
// until it comes back reconciled.
func (t *logicTask[T, A]) render(ctx context.Context) error {
	view := t.logic(t.data)
	resp := renderResponse[T, A]{prev: t.view, view: view, state: t.state}
	if err := send(ctx, t.responses, resp); err != nil {
		return err
	}
	ret, err := receive(ctx, t.returns)
	if err != nil {
		return err
	}
	t.view, t.state, t.rootId, t.pending = ret.view, ret.state, ret.id, ret.pending
	t.ui = uiIdle
	return nil
}

func ignoreCanceled(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return err
}
