package trui

// AdaptThunk delivers a message to the child of an Adapt view. The parent
// calls Call with the child's data once it has derived it.
type AdaptThunk[CT, CA any] struct {
	child View[CT, CA]
	path  IdPath
	state any
	msg   any
}

// Call routes the message into the child with data.
func (t AdaptThunk[CT, CA]) Call(data *CT) MessageResult[CA] {
	return t.child.Message(t.path, t.state, t.msg, data)
}

type adaptView[PT, PA, CT, CA any] struct {
	child View[CT, CA]
	f     func(data *PT, thunk AdaptThunk[CT, CA]) MessageResult[PA]
}

// Adapt embeds a view over child data CT and actions CA into a tree over
// PT and PA. f receives every message bound for child and decides what
// data to call it with and how to translate the result.
func Adapt[PT, PA, CT, CA any](child View[CT, CA], f func(data *PT, thunk AdaptThunk[CT, CA]) MessageResult[PA]) View[PT, PA] {
	return adaptView[PT, PA, CT, CA]{child: child, f: f}
}

// AdaptState embeds child, which sees only the part of the data that
// lens returns.
func AdaptState[PT, CT, A any](child View[CT, A], lens func(data *PT) *CT) View[PT, A] {
	return Adapt(child, func(data *PT, thunk AdaptThunk[CT, A]) MessageResult[A] {
		return thunk.Call(lens(data))
	})
}

// MapActions translates the actions of child with f.
func MapActions[T, A, B any](child View[T, A], f func(A) B) View[T, B] {
	return Adapt(child, func(data *T, thunk AdaptThunk[T, A]) MessageResult[B] {
		return MapAction(thunk.Call(data), f)
	})
}

func (v adaptView[PT, PA, CT, CA]) Build(cx *Cx) (Id, any, Widget) {
	id, s, pod := buildWrapped(cx, v.child)
	return id, s, &wrapper{child: pod}
}

func (v adaptView[PT, PA, CT, CA]) Rebuild(cx *Cx, prev View[PT, PA], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(adaptView[PT, PA, CT, CA])
	return rebuildWrapped(cx, *id, *state, old.child, v.child, mustWidget[*wrapper](w).child)
}

func (v adaptView[PT, PA, CT, CA]) Message(path IdPath, state any, msg any, data *PT) MessageResult[PA] {
	s := state.(*slot)
	if len(path) == 0 || path[0] != s.id {
		return Stale[PA](msg)
	}
	return v.f(data, AdaptThunk[CT, CA]{child: v.child, path: path[1:], state: s.state, msg: msg})
}
