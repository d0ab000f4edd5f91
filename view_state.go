package trui

// StateScope is the data seen by the subtree of a UseState view: the
// application data together with state private to the UseState node.
type StateScope[T, S any] struct {
	Data  *T
	State *S
}

type useStateView[T, A, S any] struct {
	init  func() S
	build func(state *S) View[StateScope[T, S], A]
}

// UseState keeps a value of type S alive for as long as the node exists.
// init runs once when the node is built; build runs on every rebuild with
// the current value. Handlers in the subtree mutate it through
// StateScope.State.
func UseState[T, A, S any](init func() S, build func(state *S) View[StateScope[T, S], A]) View[T, A] {
	return useStateView[T, A, S]{init: init, build: build}
}

type useStateState[T, A, S any] struct {
	value      S
	child      View[StateScope[T, S], A]
	childId    Id
	childState any
}

func (v useStateView[T, A, S]) Build(cx *Cx) (Id, any, Widget) {
	st := &useStateState[T, A, S]{value: v.init()}
	var pod *Pod
	id := cx.WithNewId(func(cx *Cx) {
		st.child = v.build(&st.value)
		st.childId, st.childState, pod = buildChild(cx, st.child)
	})
	return id, st, &wrapper{child: pod}
}

func (v useStateView[T, A, S]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	st := (*state).(*useStateState[T, A, S])
	pod := mustWidget[*wrapper](w).child
	var changes ChangeFlags
	cx.With(*id, func(cx *Cx) {
		next := v.build(&st.value)
		changes = rebuildChild(cx, st.child, next, &st.childId, &st.childState, pod)
		st.child = next
	})
	return changes
}

func (v useStateView[T, A, S]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	st := state.(*useStateState[T, A, S])
	if len(path) == 0 || path[0] != st.childId {
		return Stale[A](msg)
	}
	scope := &StateScope[T, S]{Data: data, State: &st.value}
	return st.child.Message(path[1:], st.childState, msg, scope)
}

type memoView[T, A any, D comparable] struct {
	data  D
	build func(D) View[T, A]
}

// Memoize builds its subtree from data and skips rebuilding it while data
// compares equal to the previous value, unless a message inside the
// subtree asked for a rebuild.
func Memoize[T, A any, D comparable](data D, build func(D) View[T, A]) View[T, A] {
	return memoView[T, A, D]{data: data, build: build}
}

type memoState[T, A any] struct {
	child      View[T, A]
	childId    Id
	childState any
	stale      bool
}

func (v memoView[T, A, D]) Build(cx *Cx) (Id, any, Widget) {
	st := &memoState[T, A]{child: v.build(v.data)}
	var pod *Pod
	id := cx.WithNewId(func(cx *Cx) {
		st.childId, st.childState, pod = buildChild(cx, st.child)
	})
	return id, st, &wrapper{child: pod}
}

func (v memoView[T, A, D]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	st := (*state).(*memoState[T, A])
	if prev.(memoView[T, A, D]).data == v.data && !st.stale {
		return ChangeNone
	}
	st.stale = false
	pod := mustWidget[*wrapper](w).child
	var changes ChangeFlags
	cx.With(*id, func(cx *Cx) {
		next := v.build(v.data)
		changes = rebuildChild(cx, st.child, next, &st.childId, &st.childState, pod)
		st.child = next
	})
	return changes
}

func (v memoView[T, A, D]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	st := state.(*memoState[T, A])
	if len(path) == 0 || path[0] != st.childId {
		return Stale[A](msg)
	}
	res := st.child.Message(path[1:], st.childState, msg, data)
	if res.Kind == MessageRequestRebuild {
		st.stale = true
	}
	return res
}
