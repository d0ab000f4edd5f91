package trui

import (
	"context"
	"sync"
)

type deferView[T, A, R any] struct {
	work    func(ctx context.Context) R
	show    func(result R) View[T, A]
	loading View[T, A]
}

// Defer runs work on its own goroutine when the node is built and shows
// loading until it returns, then show(result). The node counts as pending
// async work until then, which holds back the frame for the debounce
// window. work should return when ctx is cancelled; ctx ends with the app.
func Defer[T, A, R any](work func(ctx context.Context) R, show func(result R) View[T, A], loading View[T, A]) View[T, A] {
	return deferView[T, A, R]{work: work, show: show, loading: loading}
}

type deferState[T, A, R any] struct {
	mu     sync.Mutex
	done   bool
	result R

	child      View[T, A]
	childId    Id
	childState any
}

func (s *deferState[T, A, R]) resolved() (R, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.done
}

// current picks the child for this build and registers the node as
// pending while the result is outstanding.
func (v deferView[T, A, R]) current(cx *Cx, id Id, st *deferState[T, A, R]) View[T, A] {
	if r, ok := st.resolved(); ok {
		return v.show(r)
	}
	cx.AddPendingAsync(id)
	return v.loading
}

func (v deferView[T, A, R]) Build(cx *Cx) (Id, any, Widget) {
	st := &deferState[T, A, R]{}
	id := cx.NewId()
	var pod *Pod
	cx.With(id, func(cx *Cx) {
		waker := cx.Waker()
		ctx := cx.Context()
		go func() {
			r := v.work(ctx)
			st.mu.Lock()
			st.result, st.done = r, true
			st.mu.Unlock()
			waker.Wake()
		}()
		st.child = v.current(cx, id, st)
		st.childId, st.childState, pod = buildChild(cx, st.child)
	})
	return id, st, &wrapper{child: pod}
}

func (v deferView[T, A, R]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	st := (*state).(*deferState[T, A, R])
	pod := mustWidget[*wrapper](w).child
	var changes ChangeFlags
	cx.With(*id, func(cx *Cx) {
		next := v.current(cx, *id, st)
		changes = rebuildChild(cx, st.child, next, &st.childId, &st.childState, pod)
		st.child = next
	})
	return changes
}

// Message answers the wake of the node's own goroutine with a rebuild
// request so the result gets shown.
func (v deferView[T, A, R]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	st := state.(*deferState[T, A, R])
	if len(path) == 0 {
		if _, ok := msg.(AsyncWake); !ok {
			return Stale[A](msg)
		}
		if _, done := st.resolved(); done {
			return RequestRebuild[A]()
		}
		return Nop[A]()
	}
	if path[0] != st.childId {
		return Stale[A](msg)
	}
	return st.child.Message(path[1:], st.childState, msg, data)
}
