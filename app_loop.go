package trui

import (
	"context"

	"github.com/trui-go/trui/internal/debug"
)

// loop is the render loop. Each cycle takes every queued event, dispatches
// them to the widget tree, hands the resulting messages to the logic task
// and renders once.
func (a *App[T, A]) loop(ctx context.Context) error {
	for {
		var batch []Event
		select {
		case <-ctx.Done():
			return nil
		case ev := <-a.events:
			batch = append(batch, ev)
		}
	drain:
		for {
			select {
			case ev := <-a.events:
				batch = append(batch, ev)
			default:
				break drain
			}
		}

		quit := false
		for _, ev := range batch {
			if _, ok := ev.(QuitEvent); ok {
				quit = true
			}
		}
		if a.root != nil {
			a.dispatch(batch)
		}
		if err := a.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if quit {
			debug.Infof("app: quit")
			return nil
		}
	}
}

// cycle sends queued messages and renders. Messages raised by the render
// itself, such as hover changes, get one more round so their effect is
// visible without waiting for the next input.
func (a *App[T, A]) cycle(ctx context.Context) error {
	if err := a.sendMessages(ctx); err != nil {
		return err
	}
	if err := a.render(ctx); err != nil {
		return err
	}
	if len(a.cxState.messages) == 0 {
		return nil
	}
	if err := a.sendMessages(ctx); err != nil {
		return err
	}
	return a.render(ctx)
}

// dispatch delivers input events to the root Pod. Pointer events also
// move the tracked mouse position, which invalidates hot state.
func (a *App[T, A]) dispatch(events []Event) {
	a.assertRenderGoroutine()
	for _, ev := range events {
		switch e := ev.(type) {
		case StartEvent, WakeEvent, QuitEvent:
			continue
		case MouseEvent:
			if !a.hasMouse || a.mouse != e.Pos() {
				a.mouse, a.hasMouse = e.Pos(), true
				a.root.state.flags |= FlagViewContextChanged
			}
		case FocusEvent:
			if !e.Gained && a.hasMouse {
				a.hasMouse = false
				a.root.state.flags |= FlagViewContextChanged
			}
		}
		cx := &EventCx{state: &a.cxState, ws: &a.rootState}
		a.root.Event(cx, ev)
	}
}

func (a *App[T, A]) sendMessages(ctx context.Context) error {
	msgs := a.cxState.take()
	if len(msgs) == 0 {
		return nil
	}
	return send(ctx, a.requests, taskRequest{kind: reqMessages, messages: msgs})
}

// send delivers v unless ctx ends first.
func send[V any](ctx context.Context, ch chan<- V, v V) error {
	select {
	case ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receive waits for a value unless ctx ends first.
func receive[V any](ctx context.Context, ch <-chan V) (V, error) {
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
