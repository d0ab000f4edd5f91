package trui

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Id identifies a view node across rebuilds. Ids are allocated from a
// process wide counter, are never zero and are never reused.
type Id uint64

var lastId atomic.Uint64

func nextId() Id {
	return Id(lastId.Add(1))
}

func (id Id) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// IdPath is the sequence of Ids from the root to a node.
type IdPath []Id

// Clone returns a copy that does not alias p.
func (p IdPath) Clone() IdPath {
	if p == nil {
		return nil
	}
	out := make(IdPath, len(p))
	copy(out, p)
	return out
}

// Last returns the Id of the node the path points at.
func (p IdPath) Last() (Id, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

func (p IdPath) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = id.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// idSet is the set of nodes with outstanding async work.
type idSet map[Id]struct{}

func (s idSet) add(id Id) { s[id] = struct{}{} }

func (s idSet) remove(id Id) { delete(s, id) }

func (s idSet) has(id Id) bool {
	_, ok := s[id]
	return ok
}
