package trui

import (
	"fmt"
	"reflect"
)

// ChangeFlags tells the parent of a rebuilt node which passes must re-run.
type ChangeFlags uint8

const (
	// ChangePaint means only the appearance changed.
	ChangePaint ChangeFlags = 1 << iota
	// ChangeLayout means the size or position of content may have changed.
	ChangeLayout
	// ChangeTree means a widget was replaced, added or removed.
	ChangeTree
)

// ChangeNone reports that nothing changed.
const ChangeNone ChangeFlags = 0

// Has reports whether all bits of other are set.
func (f ChangeFlags) Has(other ChangeFlags) bool {
	return f&other == other
}

func (f ChangeFlags) String() string {
	if f == ChangeNone {
		return "none"
	}
	s := ""
	for _, c := range []struct {
		flag ChangeFlags
		name string
	}{{ChangeTree, "tree"}, {ChangeLayout, "layout"}, {ChangePaint, "paint"}} {
		if f&c.flag != 0 {
			if s != "" {
				s += "|"
			}
			s += c.name
		}
	}
	return s
}

// View is an immutable description of a subtree. T is the application data
// the subtree reads and mutates; A is the action type it can bubble up.
//
// Build materializes the view into an Id, private state and a widget.
// Rebuild updates the widget created by a previous view of the same
// concrete type and reports what changed. Message delivers msg to the node
// addressed by path; path has the Ids of this node and its ancestors
// stripped, so an empty path addresses this node.
//
// Views that mutate their private state in Message should use pointer state
// so the mutation is visible to the next Rebuild.
type View[T, A any] interface {
	Build(cx *Cx) (Id, any, Widget)
	Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags
	Message(path IdPath, state any, msg any, data *T) MessageResult[A]
}

// MessageKind classifies the outcome of View.Message.
type MessageKind uint8

const (
	// MessageNop means the message was consumed without further effect.
	MessageNop MessageKind = iota
	// MessageRequestRebuild asks for the view function to run again.
	MessageRequestRebuild
	// MessageAction carries an action for the embedding application.
	MessageAction
	// MessageStale means the addressed node no longer exists.
	MessageStale
)

func (k MessageKind) String() string {
	switch k {
	case MessageNop:
		return "nop"
	case MessageRequestRebuild:
		return "request-rebuild"
	case MessageAction:
		return "action"
	case MessageStale:
		return "stale"
	}
	return fmt.Sprintf("MessageKind(%d)", uint8(k))
}

// MessageResult is the outcome of routing a message through a view tree.
type MessageResult[A any] struct {
	Kind   MessageKind
	Action A
	// Message is the undelivered message of a stale result.
	Message any
}

// Nop returns a consumed, no-effect result.
func Nop[A any]() MessageResult[A] {
	return MessageResult[A]{Kind: MessageNop}
}

// RequestRebuild returns a result asking for a rebuild.
func RequestRebuild[A any]() MessageResult[A] {
	return MessageResult[A]{Kind: MessageRequestRebuild}
}

// ActionResult returns a result carrying action a.
func ActionResult[A any](a A) MessageResult[A] {
	return MessageResult[A]{Kind: MessageAction, Action: a}
}

// Stale returns a result for a message whose target is gone.
func Stale[A any](msg any) MessageResult[A] {
	return MessageResult[A]{Kind: MessageStale, Message: msg}
}

// MapAction converts the action of r with f. Other kinds pass through.
func MapAction[A, B any](r MessageResult[A], f func(A) B) MessageResult[B] {
	out := MessageResult[B]{Kind: r.Kind, Message: r.Message}
	if r.Kind == MessageAction {
		out.Action = f(r.Action)
	}
	return out
}

// AsyncWake is the message delivered to a node whose Waker fired.
type AsyncWake struct{}

// sameKind reports whether next may rebuild the node prev created.
func sameKind(prev, next any) bool {
	return prev != nil && reflect.TypeOf(prev) == reflect.TypeOf(next)
}

// buildChild builds v inside the current node and wraps its widget in a Pod.
func buildChild[T, A any](cx *Cx, v View[T, A]) (Id, any, *Pod) {
	id, state, w := v.Build(cx)
	return id, state, NewPod(w)
}

// rebuildChild updates the child slot held in pod. A child of a different
// kind is torn down and built from scratch under a new Id.
func rebuildChild[T, A any](cx *Cx, prev, next View[T, A], id *Id, state *any, pod *Pod) ChangeFlags {
	if !sameKind(prev, next) {
		newId, newState, w := next.Build(cx)
		*id, *state = newId, newState
		return pod.replace(w)
	}
	return pod.Mark(next.Rebuild(cx, prev, id, state, pod.Widget()))
}

// routeChild forwards msg to child when path starts with the child's Id.
func routeChild[T, A any](path IdPath, childId Id, child View[T, A], childState any, msg any, data *T) MessageResult[A] {
	if len(path) == 0 || path[0] != childId {
		return Stale[A](msg)
	}
	return child.Message(path[1:], childState, msg, data)
}

// mustWidget asserts the widget kind a view created on Build.
func mustWidget[W Widget](w Widget) W {
	typed, ok := w.(W)
	if !ok {
		var want W
		panic(fmt.Sprintf("trui: widget changed its type: have %T, want %T", w, want))
	}
	return typed
}

// slot is the private state of a single-child view.
type slot struct {
	id    Id
	state any
}
