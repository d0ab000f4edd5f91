package trui

// sensor selects which input an event decorator listens to.
type sensor uint8

const (
	senseClick sensor = iota
	senseMouse
	senseHover
	senseKey
	senseFocus
)

type handlerView[T, A any] struct {
	child  View[T, A]
	sense  sensor
	keys   func(KeyEvent) bool
	handle func(data *T, msg any) MessageResult[A]
}

// OnClick calls f when child is clicked with the left button and no
// descendant handled the click.
func OnClick[T, A any](child View[T, A], f func(data *T)) View[T, A] {
	return handlerView[T, A]{child: child, sense: senseClick, handle: func(data *T, msg any) MessageResult[A] {
		if _, ok := msg.(ClickMsg); !ok {
			return Stale[A](msg)
		}
		f(data)
		return RequestRebuild[A]()
	}}
}

// OnClickAction is OnClick for handlers that produce an action for the
// embedding application instead of mutating data.
func OnClickAction[T, A any](child View[T, A], f func(data *T) A) View[T, A] {
	return handlerView[T, A]{child: child, sense: senseClick, handle: func(data *T, msg any) MessageResult[A] {
		if _, ok := msg.(ClickMsg); !ok {
			return Stale[A](msg)
		}
		return ActionResult(f(data))
	}}
}

// OnMouse calls f with every pointer event over child that no descendant
// handled.
func OnMouse[T, A any](child View[T, A], f func(data *T, ev MouseEvent)) View[T, A] {
	return handlerView[T, A]{child: child, sense: senseMouse, handle: func(data *T, msg any) MessageResult[A] {
		ev, ok := msg.(MouseEvent)
		if !ok {
			return Stale[A](msg)
		}
		f(data, ev)
		return RequestRebuild[A]()
	}}
}

// OnHover calls f when the pointer enters child.
func OnHover[T, A any](child View[T, A], f func(data *T)) View[T, A] {
	return hoverView[T, A](child, f, nil)
}

// OnHoverLost calls f when the pointer leaves child.
func OnHoverLost[T, A any](child View[T, A], f func(data *T)) View[T, A] {
	return hoverView[T, A](child, nil, f)
}

// OnHoverChange calls enter and leave as the pointer crosses child. Either
// may be nil.
func OnHoverChange[T, A any](child View[T, A], enter, leave func(data *T)) View[T, A] {
	return hoverView[T, A](child, enter, leave)
}

func hoverView[T, A any](child View[T, A], enter, leave func(data *T)) View[T, A] {
	return handlerView[T, A]{child: child, sense: senseHover, handle: func(data *T, msg any) MessageResult[A] {
		hm, ok := msg.(HoverMsg)
		if !ok {
			return Stale[A](msg)
		}
		f := leave
		if hm.Hot {
			f = enter
		}
		if f == nil {
			return Nop[A]()
		}
		f(data)
		return RequestRebuild[A]()
	}}
}

// OnKey calls f with key presses that no descendant handled. The
// decorator handles every key it sees.
func OnKey[T, A any](child View[T, A], f func(data *T, ev KeyEvent)) View[T, A] {
	return handlerView[T, A]{child: child, sense: senseKey, handle: func(data *T, msg any) MessageResult[A] {
		ev, ok := msg.(KeyEvent)
		if !ok {
			return Stale[A](msg)
		}
		f(data, ev)
		return RequestRebuild[A]()
	}}
}

// OnFocusChange calls f when the terminal window gains or loses focus.
// The event keeps propagating to other listeners.
func OnFocusChange[T, A any](child View[T, A], f func(data *T, gained bool)) View[T, A] {
	return handlerView[T, A]{child: child, sense: senseFocus, handle: func(data *T, msg any) MessageResult[A] {
		ev, ok := msg.(FocusEvent)
		if !ok {
			return Stale[A](msg)
		}
		f(data, ev.Gained)
		return RequestRebuild[A]()
	}}
}

func (v handlerView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	id, s, pod := buildWrapped(cx, v.child)
	path := append(cx.Path(), id)
	return id, s, &sensorWidget{wrapper: wrapper{child: pod}, path: path, sense: v.sense, keys: v.keys}
}

func (v handlerView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(handlerView[T, A])
	sw := mustWidget[*sensorWidget](w)
	sw.sense, sw.keys = v.sense, v.keys
	return rebuildWrapped(cx, *id, *state, old.child, v.child, sw.child)
}

// Message handles messages addressed to the decorator itself and routes
// the rest into the child.
func (v handlerView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	if len(path) == 0 {
		return v.handle(data, msg)
	}
	return messageWrapped(path, state, v.child, msg, data)
}

type sensorWidget struct {
	wrapper
	path  IdPath
	sense sensor
	// keys filters key events; nil accepts every key.
	keys func(KeyEvent) bool
}

func (w *sensorWidget) Event(cx *EventCx, ev Event) {
	w.child.Event(cx, ev)
	if cx.IsHandled() {
		return
	}
	switch e := ev.(type) {
	case MouseEvent:
		switch {
		case w.sense == senseClick && e.Action == MousePress && e.Button == MouseLeft:
			cx.AddMessage(w.path, ClickMsg{Button: e.Button})
			cx.SetHandled()
		case w.sense == senseMouse:
			cx.AddMessage(w.path, e)
			cx.SetHandled()
		}
	case KeyEvent:
		if w.sense == senseKey && (w.keys == nil || w.keys(e)) {
			cx.AddMessage(w.path, e)
			cx.SetHandled()
		}
	case FocusEvent:
		if w.sense == senseFocus {
			cx.AddMessage(w.path, e)
		}
	}
}

func (w *sensorWidget) Lifecycle(cx *LifecycleCx, ev LifecycleEvent) {
	if hc, ok := ev.(HotChanged); ok {
		if w.sense == senseHover {
			cx.AddMessage(w.path, HoverMsg{Hot: hc.Hot})
		}
		return
	}
	w.wrapper.Lifecycle(cx, ev)
}
