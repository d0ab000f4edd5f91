package trui

import "strings"

// PodFlags records the pending work of a Pod and its subtree.
type PodFlags uint16

const (
	// FlagNeedsLayout is set when the subtree must be laid out again.
	FlagNeedsLayout PodFlags = 1 << iota
	// FlagNeedsPaint is set when the subtree must be painted again.
	FlagNeedsPaint
	// FlagTreeChanged is set when a widget in the subtree was replaced,
	// added or removed.
	FlagTreeChanged
	// FlagViewContextChanged is set when window positions or the pointer
	// moved and hot state must be recomputed.
	FlagViewContextChanged
	// FlagHot is set while the pointer is over the widget. It is local
	// state and never propagates.
	FlagHot
)

// upwardFlags are merged into the parent after every call into a child.
const upwardFlags = FlagNeedsLayout | FlagNeedsPaint | FlagTreeChanged | FlagViewContextChanged

// Has reports whether all bits of other are set.
func (f PodFlags) Has(other PodFlags) bool {
	return f&other == other
}

// Any reports whether at least one bit of other is set.
func (f PodFlags) Any(other PodFlags) bool {
	return f&other != 0
}

func (f PodFlags) String() string {
	var parts []string
	names := []struct {
		flag PodFlags
		name string
	}{
		{FlagNeedsLayout, "layout"},
		{FlagNeedsPaint, "paint"},
		{FlagTreeChanged, "tree"},
		{FlagViewContextChanged, "view-context"},
		{FlagHot, "hot"},
	}
	for _, n := range names {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "clear"
	}
	return strings.Join(parts, "|")
}

// widgetState is the node-state record of a Pod.
type widgetState struct {
	flags PodFlags
	// origin is relative to the parent widget.
	origin Point
	// windowOrigin is absolute, refreshed by the view context pass.
	windowOrigin Point
	size         Size
	// constraints of the last layout, valid when laidOut is set.
	constraints BoxConstraints
	laidOut     bool
}

func (s *widgetState) mergeUp(child *widgetState) {
	s.flags |= child.flags & upwardFlags
}

func (s *widgetState) windowRect() Rect {
	return Rect{X: s.windowOrigin.X, Y: s.windowOrigin.Y, Width: s.size.Width, Height: s.size.Height}
}

// Pod pairs a widget with its node state. Parents hold their children as
// Pods and always call into them through the Pod so flags propagate.
type Pod struct {
	state  widgetState
	widget Widget
}

// NewPod wraps w. A new Pod needs every pass.
func NewPod(w Widget) *Pod {
	return &Pod{
		state:  widgetState{flags: upwardFlags},
		widget: w,
	}
}

// Widget returns the wrapped widget.
func (p *Pod) Widget() Widget {
	return p.widget
}

// Flags returns the pending work of the subtree.
func (p *Pod) Flags() PodFlags {
	return p.state.flags
}

// Size is the size computed by the last layout.
func (p *Pod) Size() Size {
	return p.state.size
}

// Origin is the position relative to the parent set by the last layout.
func (p *Pod) Origin() Point {
	return p.state.origin
}

// WindowRect is the area in window coordinates as of the last view
// context pass.
func (p *Pod) WindowRect() Rect {
	return p.state.windowRect()
}

// IsHot reports whether the pointer was over the widget in the last view
// context pass.
func (p *Pod) IsHot() bool {
	return p.state.flags.Has(FlagHot)
}

// Mark records the changes a rebuild reported and returns them unchanged
// so the caller can pass them on to its own parent.
func (p *Pod) Mark(changes ChangeFlags) ChangeFlags {
	if changes.Has(ChangeTree) {
		p.state.flags |= FlagTreeChanged | FlagNeedsLayout | FlagNeedsPaint | FlagViewContextChanged
	}
	if changes.Has(ChangeLayout) {
		p.state.flags |= FlagNeedsLayout | FlagNeedsPaint
	}
	if changes.Has(ChangePaint) {
		p.state.flags |= FlagNeedsPaint
	}
	return changes
}

// replace swaps in a widget of a different kind. The new widget has not
// seen the pointer yet, so hot state starts over.
func (p *Pod) replace(w Widget) ChangeFlags {
	p.widget = w
	p.state.laidOut = false
	p.state.flags &^= FlagHot
	return p.Mark(ChangeTree)
}

// Event delivers ev to the widget and reports whether it was handled.
// Pointer events only reach Pods whose window rect contains the pointer.
func (p *Pod) Event(cx *EventCx, ev Event) bool {
	if cx.handled {
		return false
	}
	if me, ok := ev.(MouseEvent); ok && !p.state.windowRect().Contains(me.Pos()) {
		return false
	}
	child := &EventCx{state: cx.state, ws: &p.state}
	p.widget.Event(child, ev)
	cx.ws.mergeUp(&p.state)
	if child.handled {
		cx.handled = true
	}
	return child.handled
}

// Lifecycle delivers ev to the widget. For ViewContextChanged the Pod
// refreshes its window origin and hot state before forwarding.
func (p *Pod) Lifecycle(cx *LifecycleCx, ev LifecycleEvent) {
	child := &LifecycleCx{state: cx.state, ws: &p.state}
	switch e := ev.(type) {
	case ViewContextChanged:
		p.state.windowOrigin = e.WindowOrigin.Add(p.state.origin)
		hot := e.HasMouse && p.state.windowRect().Contains(e.Mouse)
		if hot != p.state.flags.Has(FlagHot) {
			p.state.flags ^= FlagHot
			p.widget.Lifecycle(child, HotChanged{Hot: hot})
		}
		e.WindowOrigin = p.state.windowOrigin
		p.widget.Lifecycle(child, e)
		p.state.flags &^= FlagViewContextChanged
	default:
		p.widget.Lifecycle(child, ev)
	}
	cx.ws.mergeUp(&p.state)
}

// Layout lays out the widget under bc. The result is cached: with no
// layout flag set and the same constraints the previous size is returned
// without calling the widget.
func (p *Pod) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	if p.state.laidOut && p.state.constraints == bc && !p.state.flags.Any(FlagNeedsLayout|FlagTreeChanged) {
		return p.state.size
	}
	child := &LayoutCx{state: cx.state, ws: &p.state}
	size := p.widget.Layout(child, bc)
	p.state.size = size
	p.state.constraints = bc
	p.state.laidOut = true
	p.state.flags &^= FlagNeedsLayout | FlagTreeChanged
	cx.ws.mergeUp(&p.state)
	return size
}

// SetOrigin places the widget relative to its parent. Moving a widget
// changes its window position, so the view context pass must run.
func (p *Pod) SetOrigin(cx *LayoutCx, origin Point) {
	if origin != p.state.origin {
		p.state.origin = origin
		p.state.flags |= FlagViewContextChanged
	}
	cx.ws.mergeUp(&p.state)
}

// Paint paints the subtree and clears its paint flag.
func (p *Pod) Paint(cx *PaintCx) {
	child := &PaintCx{buf: cx.buf, ws: &p.state, origin: cx.origin.Add(p.state.origin)}
	p.widget.Paint(child)
	p.state.flags &^= FlagNeedsPaint
}
