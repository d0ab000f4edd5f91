package trui

import (
	"sync"
	"time"
)

// EventReader delivers terminal input to the app.
type EventReader interface {
	// PollEvent waits up to timeout for the next event. It reports false
	// on timeout. A negative timeout waits indefinitely.
	PollEvent(timeout time.Duration) (Event, bool)
	Close() error
}

// closedIdle bounds how long a closed reader waits when asked to block
// indefinitely.
const closedIdle = time.Second

// closedEvents is what a reader reports once its input ends: whatever the
// unfinished bytes decode to, then QuitEvent.
func closedEvents(partial []byte) []Event {
	events, _ := parseInput(partial, false)
	return append(events, QuitEvent{})
}

// idleClosed stands in for a poll on input that has ended, so callers
// polling in a loop do not spin.
func idleClosed(timeout time.Duration) {
	if timeout < 0 || timeout > closedIdle {
		timeout = closedIdle
	}
	time.Sleep(timeout)
}

// MockEventReader is an EventReader fed by tests.
type MockEventReader struct {
	ch        chan Event
	closeOnce sync.Once
	done      chan struct{}
}

var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a reader pre-loaded with events.
func NewMockEventReader(events ...Event) *MockEventReader {
	r := &MockEventReader{
		ch:   make(chan Event, max(64, len(events))),
		done: make(chan struct{}),
	}
	for _, ev := range events {
		r.ch <- ev
	}
	return r
}

// Push queues ev. It is dropped when the reader is closed.
func (r *MockEventReader) Push(ev Event) {
	select {
	case r.ch <- ev:
	case <-r.done:
	}
}

func (r *MockEventReader) PollEvent(timeout time.Duration) (Event, bool) {
	var after <-chan time.Time
	if timeout >= 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		after = t.C
	}
	select {
	case ev := <-r.ch:
		return ev, true
	case <-after:
		return nil, false
	case <-r.done:
		return nil, false
	}
}

func (r *MockEventReader) Close() error {
	r.closeOnce.Do(func() { close(r.done) })
	return nil
}
