package trui

type borderSpec struct {
	sides BorderSides
	kind  BorderKind
	style Style
}

type borderView[T, A any] struct {
	child View[T, A]
	spec  borderSpec
}

// Border draws a line of the given kind around child on the selected sides.
func Border[T, A any](child View[T, A], sides BorderSides, kind BorderKind, style Style) View[T, A] {
	return borderView[T, A]{child: child, spec: borderSpec{sides: sides, kind: kind, style: style}}
}

func (v borderView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	id, s, pod := buildWrapped(cx, v.child)
	return id, s, &borderWidget{wrapper: wrapper{child: pod}, spec: v.spec}
}

func (v borderView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(borderView[T, A])
	bw := mustWidget[*borderWidget](w)
	changes := rebuildWrapped(cx, *id, *state, old.child, v.child, bw.child)
	bw.spec = v.spec
	switch {
	case old.spec.sides != v.spec.sides:
		changes |= ChangeLayout
	case old.spec != v.spec:
		changes |= ChangePaint
	}
	return changes
}

func (v borderView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	return messageWrapped(path, state, v.child, msg, data)
}

type borderWidget struct {
	wrapper
	spec borderSpec
}

func (w *borderWidget) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	return insetLayout(cx, w.child, bc, w.spec.sides.Edges())
}

func (w *borderWidget) Paint(cx *PaintCx) {
	w.child.Paint(cx)
	DrawBorder(cx.Buffer(), cx.Rect(), w.spec.sides, w.spec.kind, w.spec.style)
}
