package trui

type fillAxes uint8

const (
	fillWidth fillAxes = 1 << iota
	fillHeight
)

type fillView[T, A any] struct {
	child    View[T, A]
	axes     fillAxes
	fraction float64
}

// FillMaxSize makes child take fraction (0..1] of the available width and
// height.
func FillMaxSize[T, A any](child View[T, A], fraction float64) View[T, A] {
	return fillView[T, A]{child: child, axes: fillWidth | fillHeight, fraction: fraction}
}

// FillMaxWidth makes child take fraction (0..1] of the available width.
func FillMaxWidth[T, A any](child View[T, A], fraction float64) View[T, A] {
	return fillView[T, A]{child: child, axes: fillWidth, fraction: fraction}
}

// FillMaxHeight makes child take fraction (0..1] of the available height.
func FillMaxHeight[T, A any](child View[T, A], fraction float64) View[T, A] {
	return fillView[T, A]{child: child, axes: fillHeight, fraction: fraction}
}

func (v fillView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	id, s, pod := buildWrapped(cx, v.child)
	return id, s, &fillWidget{wrapper: wrapper{child: pod}, axes: v.axes, fraction: v.fraction}
}

func (v fillView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(fillView[T, A])
	fw := mustWidget[*fillWidget](w)
	changes := rebuildWrapped(cx, *id, *state, old.child, v.child, fw.child)
	if old.axes != v.axes || old.fraction != v.fraction {
		fw.axes, fw.fraction = v.axes, v.fraction
		changes |= ChangeLayout
	}
	return changes
}

func (v fillView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	return messageWrapped(path, state, v.child, msg, data)
}

type fillWidget struct {
	wrapper
	axes     fillAxes
	fraction float64
}

func (w *fillWidget) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	f := min(max(w.fraction, 0), 1)
	if w.axes&fillWidth != 0 {
		bc = bc.WithWidth(int(float64(bc.Max.Width) * f))
	}
	if w.axes&fillHeight != 0 {
		bc = bc.WithHeight(int(float64(bc.Max.Height) * f))
	}
	return w.wrapper.Layout(cx, bc)
}

// weighted is implemented by widgets that share the free space of a stack.
type weighted interface {
	weight() float64
}

type weightView[T, A any] struct {
	child  View[T, A]
	weight float64
}

// Weight gives child a share of the space a stack has left after laying
// out its unweighted children, proportional to w.
func Weight[T, A any](child View[T, A], w float64) View[T, A] {
	return weightView[T, A]{child: child, weight: w}
}

func (v weightView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	id, s, pod := buildWrapped(cx, v.child)
	return id, s, &weightWidget{wrapper: wrapper{child: pod}, w: v.weight}
}

func (v weightView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(weightView[T, A])
	ww := mustWidget[*weightWidget](w)
	changes := rebuildWrapped(cx, *id, *state, old.child, v.child, ww.child)
	if old.weight != v.weight {
		ww.w = v.weight
		changes |= ChangeLayout
	}
	return changes
}

func (v weightView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	return messageWrapped(path, state, v.child, msg, data)
}

type weightWidget struct {
	wrapper
	w float64
}

func (w *weightWidget) weight() float64 {
	return w.w
}
