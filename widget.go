package trui

// Widget is a retained render node. Widgets own the Pods of their children
// and are only touched from the render goroutine.
type Widget interface {
	// Event handles input. Containers forward to child Pods first so
	// unhandled events bubble back up.
	Event(cx *EventCx, ev Event)
	// Lifecycle handles non-input notifications.
	Lifecycle(cx *LifecycleCx, ev LifecycleEvent)
	// Layout returns a size within bc and positions children.
	Layout(cx *LayoutCx, bc BoxConstraints) Size
	// Paint draws into the buffer. It must not change layout state.
	Paint(cx *PaintCx)
}

// Message is an outbound message from a widget to the view that built it.
type Message struct {
	Path IdPath
	Body any
}

// ClickMsg is sent by click handlers on a left button press.
type ClickMsg struct {
	Button MouseButton
}

// HoverMsg is sent when the pointer enters or leaves a hover target.
type HoverMsg struct {
	Hot bool
}

// LifecycleEvent is a structural notification delivered outside input.
type LifecycleEvent interface {
	isLifecycle()
}

// ViewContextChanged tells a subtree that its window position or the
// pointer position changed.
type ViewContextChanged struct {
	WindowOrigin Point
	Mouse        Point
	HasMouse     bool
}

func (ViewContextChanged) isLifecycle() {}

// HotChanged is sent to a widget when the pointer enters or leaves it.
type HotChanged struct {
	Hot bool
}

func (HotChanged) isLifecycle() {}

// cxState is shared by every context of one pass.
type cxState struct {
	messages []Message
}

func (s *cxState) take() []Message {
	m := s.messages
	s.messages = nil
	return m
}

// EventCx is passed to Widget.Event.
type EventCx struct {
	state   *cxState
	ws      *widgetState
	handled bool
}

// AddMessage queues a message for the view at path.
func (cx *EventCx) AddMessage(path IdPath, body any) {
	cx.state.messages = append(cx.state.messages, Message{Path: path, Body: body})
}

// SetHandled stops the event from reaching siblings and ancestors.
func (cx *EventCx) SetHandled() {
	cx.handled = true
}

// IsHandled reports whether a descendant handled the event.
func (cx *EventCx) IsHandled() bool {
	return cx.handled
}

// RequestLayout marks the widget for layout.
func (cx *EventCx) RequestLayout() {
	cx.ws.flags |= FlagNeedsLayout | FlagNeedsPaint
}

// RequestPaint marks the widget for paint.
func (cx *EventCx) RequestPaint() {
	cx.ws.flags |= FlagNeedsPaint
}

// IsHot reports whether the pointer is over the widget.
func (cx *EventCx) IsHot() bool {
	return cx.ws.flags.Has(FlagHot)
}

// Rect is the widget's area in window coordinates.
func (cx *EventCx) Rect() Rect {
	return cx.ws.windowRect()
}

// LifecycleCx is passed to Widget.Lifecycle.
type LifecycleCx struct {
	state *cxState
	ws    *widgetState
}

// AddMessage queues a message for the view at path.
func (cx *LifecycleCx) AddMessage(path IdPath, body any) {
	cx.state.messages = append(cx.state.messages, Message{Path: path, Body: body})
}

// RequestPaint marks the widget for paint.
func (cx *LifecycleCx) RequestPaint() {
	cx.ws.flags |= FlagNeedsPaint
}

// RequestLayout marks the widget for layout.
func (cx *LifecycleCx) RequestLayout() {
	cx.ws.flags |= FlagNeedsLayout | FlagNeedsPaint
}

// IsHot reports whether the pointer is over the widget.
func (cx *LifecycleCx) IsHot() bool {
	return cx.ws.flags.Has(FlagHot)
}

// LayoutCx is passed to Widget.Layout.
type LayoutCx struct {
	state *cxState
	ws    *widgetState
}

// PaintCx is passed to Widget.Paint.
type PaintCx struct {
	buf    *Buffer
	ws     *widgetState
	origin Point
}

// Buffer is the back buffer of the frame being painted.
func (cx *PaintCx) Buffer() *Buffer {
	return cx.buf
}

// Rect is the widget's area in window coordinates.
func (cx *PaintCx) Rect() Rect {
	return Rect{X: cx.origin.X, Y: cx.origin.Y, Width: cx.ws.size.Width, Height: cx.ws.size.Height}
}

// IsHot reports whether the pointer is over the widget.
func (cx *PaintCx) IsHot() bool {
	return cx.ws.flags.Has(FlagHot)
}

// forwardLifecycle passes notifications meant for a whole subtree to child.
// HotChanged is addressed to one widget and is not forwarded.
func forwardLifecycle(cx *LifecycleCx, child *Pod, ev LifecycleEvent) {
	if _, ok := ev.(HotChanged); ok {
		return
	}
	child.Lifecycle(cx, ev)
}
