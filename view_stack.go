package trui

import "github.com/trui-go/trui/internal/layout"

// Axis is the main direction of a stack.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

type stackView[T, A any] struct {
	axis     Axis
	spacing  int
	children []View[T, A]
}

// VStack lays children out top to bottom.
func VStack[T, A any](children ...View[T, A]) View[T, A] {
	return stackView[T, A]{axis: Vertical, children: children}
}

// HStack lays children out left to right.
func HStack[T, A any](children ...View[T, A]) View[T, A] {
	return stackView[T, A]{axis: Horizontal, children: children}
}

// Stack lays children out along axis with spacing empty cells between
// them. Children wrapped in Weight share the space left over by the
// others.
func Stack[T, A any](axis Axis, spacing int, children ...View[T, A]) View[T, A] {
	return stackView[T, A]{axis: axis, spacing: spacing, children: children}
}

// stackState holds the child slots in view order.
type stackState struct {
	slots []slot
}

func (v stackView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	st := &stackState{slots: make([]slot, len(v.children))}
	w := &stackWidget{axis: v.axis, spacing: v.spacing, children: make([]*Pod, len(v.children))}
	id := cx.WithNewId(func(cx *Cx) {
		for i, child := range v.children {
			st.slots[i].id, st.slots[i].state, w.children[i] = buildChild(cx, child)
		}
	})
	return id, st, w
}

// Rebuild diffs children by position. Children past the old length are
// built; children past the new length are dropped.
func (v stackView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(stackView[T, A])
	st := (*state).(*stackState)
	sw := mustWidget[*stackWidget](w)

	changes := ChangeNone
	if old.axis != v.axis || old.spacing != v.spacing {
		sw.axis, sw.spacing = v.axis, v.spacing
		changes |= ChangeLayout
	}
	cx.With(*id, func(cx *Cx) {
		common := min(len(old.children), len(v.children))
		for i := 0; i < common; i++ {
			changes |= rebuildChild(cx, old.children[i], v.children[i], &st.slots[i].id, &st.slots[i].state, sw.children[i])
		}
		for i := common; i < len(v.children); i++ {
			var s slot
			var pod *Pod
			s.id, s.state, pod = buildChild(cx, v.children[i])
			st.slots = append(st.slots, s)
			sw.children = append(sw.children, pod)
			changes |= ChangeTree
		}
		if len(v.children) < len(old.children) {
			clear(sw.children[len(v.children):])
			st.slots = st.slots[:len(v.children)]
			sw.children = sw.children[:len(v.children)]
			changes |= ChangeTree
		}
	})
	return changes
}

func (v stackView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	st := state.(*stackState)
	if len(path) == 0 {
		return Stale[A](msg)
	}
	for i, s := range st.slots {
		if s.id == path[0] && i < len(v.children) {
			return v.children[i].Message(path[1:], s.state, msg, data)
		}
	}
	return Stale[A](msg)
}

type stackWidget struct {
	axis     Axis
	spacing  int
	children []*Pod
}

func (w *stackWidget) Event(cx *EventCx, ev Event) {
	for _, child := range w.children {
		if child.Event(cx, ev) {
			return
		}
	}
}

func (w *stackWidget) Lifecycle(cx *LifecycleCx, ev LifecycleEvent) {
	for _, child := range w.children {
		forwardLifecycle(cx, child, ev)
	}
}

// main and cross read a Size along and across the stack axis.
func (w *stackWidget) main(s Size) int {
	if w.axis == Vertical {
		return s.Height
	}
	return s.Width
}

func (w *stackWidget) cross(s Size) int {
	if w.axis == Vertical {
		return s.Width
	}
	return s.Height
}

func (w *stackWidget) size(main, cross int) Size {
	if w.axis == Vertical {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// Layout gives unweighted children as much room as they want in order,
// then splits what is left between weighted children.
func (w *stackWidget) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	n := len(w.children)
	if n == 0 {
		return bc.Constrain(Size{})
	}
	avail := w.main(bc.Max)
	maxCross := w.cross(bc.Max)
	gaps := w.spacing * (n - 1)

	sizes := make([]Size, n)
	weights := make([]float64, n)
	used := gaps
	anyWeighted := false
	for i, child := range w.children {
		if wt, ok := child.Widget().(weighted); ok && wt.weight() > 0 {
			weights[i] = wt.weight()
			anyWeighted = true
			continue
		}
		room := max(0, avail-used)
		sizes[i] = child.Layout(cx, Loose(w.size(room, maxCross)))
		used += w.main(sizes[i])
	}
	if anyWeighted {
		shares := layout.Distribute(max(0, avail-used), weights)
		for i, child := range w.children {
			if weights[i] == 0 {
				continue
			}
			cbc := BoxConstraints{Min: w.size(shares[i], 0), Max: w.size(shares[i], maxCross)}
			sizes[i] = child.Layout(cx, cbc)
			used += w.main(sizes[i])
		}
	}

	pos, crossExtent := 0, 0
	for i, child := range w.children {
		if w.axis == Vertical {
			child.SetOrigin(cx, Point{X: 0, Y: pos})
		} else {
			child.SetOrigin(cx, Point{X: pos, Y: 0})
		}
		pos += w.main(sizes[i]) + w.spacing
		crossExtent = max(crossExtent, w.cross(sizes[i]))
	}
	return bc.Constrain(w.size(used, crossExtent))
}

func (w *stackWidget) Paint(cx *PaintCx) {
	for _, child := range w.children {
		child.Paint(cx)
	}
}
