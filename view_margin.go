package trui

type marginView[T, A any] struct {
	child View[T, A]
	edges Edges
}

// Margin surrounds child with empty cells.
func Margin[T, A any](child View[T, A], edges Edges) View[T, A] {
	return marginView[T, A]{child: child, edges: edges}
}

func (v marginView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	id, s, pod := buildWrapped(cx, v.child)
	return id, s, &marginWidget{wrapper: wrapper{child: pod}, edges: v.edges}
}

func (v marginView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(marginView[T, A])
	mw := mustWidget[*marginWidget](w)
	changes := rebuildWrapped(cx, *id, *state, old.child, v.child, mw.child)
	if old.edges != v.edges {
		mw.edges = v.edges
		changes |= ChangeLayout
	}
	return changes
}

func (v marginView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	return messageWrapped(path, state, v.child, msg, data)
}

type marginWidget struct {
	wrapper
	edges Edges
}

func (w *marginWidget) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	return insetLayout(cx, w.child, bc, w.edges)
}

// insetLayout lays child out inside edges and returns the outer size.
func insetLayout(cx *LayoutCx, child *Pod, bc BoxConstraints, edges Edges) Size {
	h, v := edges.Horizontal(), edges.Vertical()
	inner := child.Layout(cx, bc.Shrink(h, v))
	child.SetOrigin(cx, edges.TopLeft())
	return bc.Constrain(Size{Width: inner.Width + h, Height: inner.Height + v})
}
