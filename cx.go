package trui

import (
	"context"
	"fmt"
)

// Cx is threaded through every Build and Rebuild call. It carries the path
// of the node being built, allocates Ids, and collects the nodes that still
// wait for async work.
//
// A Cx is owned by the render loop and must not be retained by views.
type Cx struct {
	path    IdPath
	pending idSet
	wake    chan<- IdPath
	ctx     context.Context
}

func newCx(ctx context.Context, wake chan<- IdPath) *Cx {
	return &Cx{
		pending: idSet{},
		wake:    wake,
		ctx:     ctx,
	}
}

// NewId allocates a fresh Id. It does not enter the node.
func (cx *Cx) NewId() Id {
	return nextId()
}

// Push enters the node id.
func (cx *Cx) Push(id Id) {
	cx.path = append(cx.path, id)
}

// Pop leaves the innermost node. Popping an empty path is a programming error.
func (cx *Cx) Pop() {
	if len(cx.path) == 0 {
		panic("trui: Pop on empty id path")
	}
	cx.path = cx.path[:len(cx.path)-1]
}

// With runs fn with id pushed onto the path.
func (cx *Cx) With(id Id, fn func(cx *Cx)) {
	cx.Push(id)
	fn(cx)
	cx.Pop()
}

// WithNewId allocates an Id, runs fn inside it and returns the Id.
func (cx *Cx) WithNewId(fn func(cx *Cx)) Id {
	id := cx.NewId()
	cx.With(id, fn)
	return id
}

// Path returns a copy of the current path.
func (cx *Cx) Path() IdPath {
	return cx.path.Clone()
}

// IsEmpty reports whether no node is currently entered.
func (cx *Cx) IsEmpty() bool {
	return len(cx.path) == 0
}

func (cx *Cx) assertEmpty(op string) {
	if !cx.IsEmpty() {
		panic(fmt.Sprintf("trui: id path imbalance on %s: %s", op, cx.path))
	}
}

// AddPendingAsync records that node id waits for async work. The set is
// collected after every render and handed to the logic task.
func (cx *Cx) AddPendingAsync(id Id) {
	cx.pending.add(id)
}

func (cx *Cx) takePending() idSet {
	p := cx.pending
	cx.pending = idSet{}
	return p
}

// Context is cancelled when the app stops. Async work started by views
// should observe it.
func (cx *Cx) Context() context.Context {
	if cx.ctx == nil {
		return context.Background()
	}
	return cx.ctx
}

// Waker returns a Waker bound to the current path.
func (cx *Cx) Waker() Waker {
	return Waker{path: cx.Path(), ch: cx.wake, done: cx.Context().Done()}
}

// Waker signals the completion of async work for one node. It is safe to
// call from any goroutine.
type Waker struct {
	path IdPath
	ch   chan<- IdPath
	done <-chan struct{}
}

// Path is the node the waker is bound to.
func (w Waker) Path() IdPath {
	return w.path
}

// Wake queues a wake for the bound node. It blocks only while the wake
// queue is full and returns immediately once the app has stopped.
func (w Waker) Wake() {
	if w.ch == nil {
		return
	}
	select {
	case w.ch <- w.path:
	case <-w.done:
	}
}
