package trui

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotTerminal is returned when the app is started on a file that
	// is not a terminal and no Terminal was supplied.
	ErrNotTerminal = errors.New("trui: not a terminal")
	// ErrAppRunning is returned by Run when the app is already running.
	ErrAppRunning = errors.New("trui: app is already running")
)

// RootTypeMismatchError is the panic value raised when the view function
// returns a root view of a different concrete type than before. The root
// has no parent Pod to swap a widget into.
type RootTypeMismatchError struct {
	Prev, Next reflect.Type
}

func (e *RootTypeMismatchError) Error() string {
	return fmt.Sprintf("trui: the root widget changed its type from %s to %s", e.Prev, e.Next)
}
