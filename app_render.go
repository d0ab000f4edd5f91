package trui

import (
	"context"
	"reflect"

	"github.com/trui-go/trui/internal/debug"
)

// render brings the widget tree up to date and paints it. When the first
// build leaves async work pending, a second build is requested that the
// logic task may hold back for the debounce window so fast results make
// it into this frame.
func (a *App[T, A]) render(ctx context.Context) error {
	pending, err := a.buildWidgetTree(ctx, false)
	if err != nil {
		return err
	}
	if pending {
		if _, err := a.buildWidgetTree(ctx, true); err != nil {
			return err
		}
	}
	return a.paintFrame()
}

// buildWidgetTree runs one round trip with the logic task: request a view,
// reconcile the widget tree with it and hand the view and its state back.
// It reports whether any node is waiting for async work.
func (a *App[T, A]) buildWidgetTree(ctx context.Context, delay bool) (bool, error) {
	a.assertRenderGoroutine()
	a.cx.takePending()
	if err := send(ctx, a.requests, taskRequest{kind: reqRender, delay: delay}); err != nil {
		return false, err
	}
	resp, err := receive(ctx, a.responses)
	if err != nil {
		return false, err
	}
	state := a.reconcile(resp)
	pending := a.cx.takePending()
	if err := send(ctx, a.returns, renderReturn[T, A]{view: resp.view, state: state, id: a.rootId, pending: pending}); err != nil {
		return false, err
	}
	return len(pending) > 0, nil
}

// reconcile builds the root widget on the first frame and rebuilds it on
// every later one. The root view must keep its concrete type because the
// root Pod has no parent that could swap it.
func (a *App[T, A]) reconcile(resp renderResponse[T, A]) any {
	if a.root == nil {
		a.cx.assertEmpty("build")
		id, state, w := resp.view.Build(a.cx)
		a.cx.assertEmpty("build")
		a.root, a.rootId = NewPod(w), id
		debug.Debugf("app: built root %s", id)
		return state
	}
	if !sameKind(resp.prev, resp.view) {
		panic(&RootTypeMismatchError{Prev: reflect.TypeOf(resp.prev), Next: reflect.TypeOf(resp.view)})
	}
	a.cx.assertEmpty("rebuild")
	state := resp.state
	changes := resp.view.Rebuild(a.cx, resp.prev, &a.rootId, &state, a.root.Widget())
	a.root.Mark(changes)
	a.cx.assertEmpty("rebuild")
	return state
}

// paintFrame runs the layout, view context and paint passes as the root
// flags require and flushes the frame inside a synchronized update.
func (a *App[T, A]) paintFrame() error {
	a.assertRenderGoroutine()
	w, h, err := a.term.Size()
	if err != nil {
		return err
	}
	size := Size{Width: w, Height: h}
	resized := size != a.size

	if resized {
		a.root.state.flags |= FlagViewContextChanged
	}

	laidOut := false
	if resized || a.root.Flags().Any(FlagNeedsLayout|FlagTreeChanged) {
		a.size = size
		a.buf.Resize(w, h)
		lcx := &LayoutCx{state: &a.cxState, ws: &a.rootState}
		a.root.Layout(lcx, Tight(size))
		a.root.SetOrigin(lcx, Point{})
		laidOut = true
		debug.Debugf("app: layout %s", size)
	}

	if a.root.Flags().Has(FlagViewContextChanged) {
		lcx := &LifecycleCx{state: &a.cxState, ws: &a.rootState}
		a.root.Lifecycle(lcx, ViewContextChanged{Mouse: a.mouse, HasMouse: a.hasMouse})
	}

	if !laidOut && !a.root.Flags().Has(FlagNeedsPaint) {
		debug.Debugf("app: paint skipped")
	} else {
		a.buf.Clear()
		a.root.Paint(&PaintCx{buf: a.buf, ws: &a.rootState})
		if err := a.flush(resized); err != nil {
			return err
		}
	}
	a.rootState.flags = 0
	return nil
}

func (a *App[T, A]) flush(full bool) error {
	if err := a.term.BeginSyncUpdate(); err != nil {
		return err
	}
	var err error
	if full {
		err = RenderFull(a.term, a.buf)
	} else {
		err = Render(a.term, a.buf)
	}
	if endErr := a.term.EndSyncUpdate(); err == nil {
		err = endErr
	}
	return err
}
