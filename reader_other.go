//go:build !unix

package trui

import (
	"os"
	"time"
)

// stdinReader reads input on a background goroutine. Resize events are
// not reported on these platforms.
type stdinReader struct {
	chunks  chan []byte
	partial []byte
	queue   []Event
	closed  bool
}

// NewEventReader reads input from in, which should already be in raw mode.
// When input ends a QuitEvent is reported.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{chunks: make(chan []byte, 16)}
	go func() {
		defer close(r.chunks)
		buf := make([]byte, 1024)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				r.chunks <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				return
			}
		}
	}()
	return r, nil
}

func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if len(r.queue) > 0 {
		return r.dequeue()
	}
	if r.closed {
		idleClosed(timeout)
		return nil, false
	}

	var after <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		after = timer.C
	}
	select {
	case chunk, ok := <-r.chunks:
		if !ok {
			r.closed = true
			r.queue = append(r.queue, closedEvents(r.partial)...)
			r.partial = nil
			break
		}
		events, rest := parseInput(append(r.partial, chunk...), true)
		r.partial = append([]byte(nil), rest...)
		r.queue = append(r.queue, events...)
	case <-after:
		if len(r.partial) == 0 {
			return nil, false
		}
		events, _ := parseInput(r.partial, false)
		r.partial = nil
		r.queue = append(r.queue, events...)
	}
	return r.dequeue()
}

func (r *stdinReader) dequeue() (Event, bool) {
	if len(r.queue) == 0 {
		return nil, false
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	return ev, true
}

// Close leaves the read goroutine blocked on input; it exits with the
// process or when in is closed.
func (r *stdinReader) Close() error {
	return nil
}
