//go:build unix

package trui

import (
	"errors"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	"github.com/trui-go/trui/internal/debug"
)

// escapeTimeout is how long a trailing ESC waits for the rest of a
// sequence before it is reported as the Escape key.
const escapeTimeout = 25 * time.Millisecond

type stdinReader struct {
	fd      int
	buf     []byte
	partial []byte
	queue   []Event
	winch   chan os.Signal
	// closed is set once input reached EOF or failed for good.
	closed  bool
}

// NewEventReader reads input from in, which should already be in raw mode.
// Window size changes are reported as ResizeEvent. When input ends a
// QuitEvent is reported.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 1024),
		winch: make(chan os.Signal, 1),
	}
	signal.Notify(r.winch, unix.SIGWINCH)
	return r, nil
}

func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := r.dequeue(); ok {
		return ev, true
	}
	if r.closed {
		idleClosed(timeout)
		return nil, false
	}
	select {
	case <-r.winch:
		ws, err := unix.IoctlGetWinsize(r.fd, unix.TIOCGWINSZ)
		if err != nil {
			debug.Warnf("reader: window size: %v", err)
			return nil, false
		}
		return ResizeEvent{Width: int(ws.Col), Height: int(ws.Row)}, true
	default:
	}

	wait := timeout
	if len(r.partial) > 0 && (wait < 0 || wait > escapeTimeout) {
		wait = escapeTimeout
	}
	ready, err := selectRead(r.fd, wait)
	if err != nil {
		debug.Warnf("reader: select: %v", err)
		return nil, false
	}
	if !ready {
		if len(r.partial) == 0 {
			return nil, false
		}
		events, _ := parseInput(r.partial, false)
		r.partial = nil
		r.queue = append(r.queue, events...)
		return r.dequeue()
	}

	n, err := unix.Read(r.fd, r.buf)
	switch {
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return nil, false
	case err != nil || n <= 0:
		if err != nil {
			debug.Warnf("reader: read: %v", err)
		}
		r.closed = true
		r.queue = append(r.queue, closedEvents(r.partial)...)
		r.partial = nil
		return r.dequeue()
	}
	data := append(r.partial, r.buf[:n]...)
	events, rest := parseInput(data, true)
	r.partial = append([]byte(nil), rest...)
	r.queue = append(r.queue, events...)
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

func (r *stdinReader) Close() error {
	signal.Stop(r.winch)
	return nil
}

// selectRead waits until fd is readable or timeout passes. A negative
// timeout waits indefinitely. EINTR is reported as a timeout.
func selectRead(fd int, timeout time.Duration) (bool, error) {
	var set unix.FdSet
	set.Zero()
	set.Set(fd)
	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}
	n, err := unix.Select(fd+1, &set, nil, nil, tv)
	if errors.Is(err, unix.EINTR) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
