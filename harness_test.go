package trui

import (
	"context"
	"testing"
)

// harness mounts a view tree the way the render loop does, without a
// terminal or a logic task, so tests can drive each pass by hand.
type harness[T, A any] struct {
	t     *testing.T
	data  *T
	cx    *Cx
	wake  chan IdPath
	view  View[T, A]
	id    Id
	state any
	root  *Pod
	ws    widgetState
	cxs   cxState
	buf   *Buffer
	size  Size
	mouse *Point
}

func mount[T, A any](t *testing.T, data *T, v View[T, A], width, height int) *harness[T, A] {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := &harness[T, A]{
		t:    t,
		data: data,
		wake: make(chan IdPath, 16),
		view: v,
		buf:  NewBuffer(width, height),
		size: Size{Width: width, Height: height},
	}
	h.cx = newCx(ctx, h.wake)
	id, state, w := v.Build(h.cx)
	h.cx.assertEmpty("build")
	h.id, h.state, h.root = id, state, NewPod(w)
	h.layout()
	return h
}

// rebuild reconciles the tree with next and returns the reported changes.
func (h *harness[T, A]) rebuild(next View[T, A]) ChangeFlags {
	h.t.Helper()
	changes := next.Rebuild(h.cx, h.view, &h.id, &h.state, h.root.Widget())
	h.cx.assertEmpty("rebuild")
	h.root.Mark(changes)
	h.view = next
	return changes
}

// layout lays the tree out and refreshes window positions and hot state.
func (h *harness[T, A]) layout() {
	lcx := &LayoutCx{state: &h.cxs, ws: &h.ws}
	h.root.Layout(lcx, Tight(h.size))
	h.root.SetOrigin(lcx, Point{})
	h.lifecycle()
}

func (h *harness[T, A]) lifecycle() {
	ev := ViewContextChanged{}
	if h.mouse != nil {
		ev.Mouse, ev.HasMouse = *h.mouse, true
	}
	h.root.Lifecycle(&LifecycleCx{state: &h.cxs, ws: &h.ws}, ev)
}

// hover moves the pointer to p and runs the view context pass.
func (h *harness[T, A]) hover(p Point) []Message {
	h.mouse = &p
	h.lifecycle()
	return h.cxs.take()
}

func (h *harness[T, A]) paint() string {
	h.buf.Clear()
	h.root.Paint(&PaintCx{buf: h.buf, ws: &h.ws})
	return h.buf.StringTrimmed()
}

// event dispatches ev and returns the messages it produced.
func (h *harness[T, A]) event(ev Event) []Message {
	h.root.Event(&EventCx{state: &h.cxs, ws: &h.ws}, ev)
	return h.cxs.take()
}

func (h *harness[T, A]) click(x, y int) []Message {
	return h.event(MouseEvent{Button: MouseLeft, Action: MousePress, X: x, Y: y})
}

// deliver routes m the way the logic task does.
func (h *harness[T, A]) deliver(m Message) MessageResult[A] {
	if len(m.Path) == 0 || m.Path[0] != h.id {
		return Stale[A](m.Body)
	}
	return h.view.Message(m.Path[1:], h.state, m.Body, h.data)
}
