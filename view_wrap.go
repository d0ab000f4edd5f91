package trui

// buildWrapped builds child as the only child of a new node. It returns
// the node's Id and state and the child's Pod.
func buildWrapped[T, A any](cx *Cx, child View[T, A]) (Id, *slot, *Pod) {
	s := &slot{}
	var pod *Pod
	id := cx.WithNewId(func(cx *Cx) {
		s.id, s.state, pod = buildChild(cx, child)
	})
	return id, s, pod
}

// rebuildWrapped rebuilds the only child of node id.
func rebuildWrapped[T, A any](cx *Cx, id Id, state any, prev, next View[T, A], pod *Pod) ChangeFlags {
	s := state.(*slot)
	var changes ChangeFlags
	cx.With(id, func(cx *Cx) {
		changes = rebuildChild(cx, prev, next, &s.id, &s.state, pod)
	})
	return changes
}

// messageWrapped routes msg into the only child. An empty path addresses
// the wrapping node itself, which has no messages of its own.
func messageWrapped[T, A any](path IdPath, state any, child View[T, A], msg any, data *T) MessageResult[A] {
	s := state.(*slot)
	return routeChild(path, s.id, child, s.state, msg, data)
}

// wrapper is a widget with one child occupying its whole area.
type wrapper struct {
	child *Pod
}

func (w *wrapper) Event(cx *EventCx, ev Event) {
	w.child.Event(cx, ev)
}

func (w *wrapper) Lifecycle(cx *LifecycleCx, ev LifecycleEvent) {
	forwardLifecycle(cx, w.child, ev)
}

func (w *wrapper) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	size := w.child.Layout(cx, bc)
	w.child.SetOrigin(cx, Point{})
	return size
}

func (w *wrapper) Paint(cx *PaintCx) {
	w.child.Paint(cx)
}
