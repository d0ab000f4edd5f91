// Package debug provides a leveled, file backed logger for the runtime.
// The terminal belongs to the render loop, so log output never goes to stdout.
// Until Init is called every logging function is a no-op.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level orders log records by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel maps a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelDebug, fmt.Errorf("unknown log level %q", s)
}

var (
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	minimum Level
)

// Init opens path for appending and routes records at or above level to it.
// A previous destination is closed first.
func Init(path string, level Level) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "trui.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	out, closer, minimum = f, f, level
	return nil
}

// SetOutput routes records to w without owning it. Passing nil disables logging.
func SetOutput(w io.Writer, level Level) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out, minimum = w, level
}

// Close closes the log destination opened by Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
	}
	out, closer = nil, nil
	return err
}

// Enabled reports whether records at level would be written.
func Enabled(level Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil && level >= minimum
}

func logf(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if out == nil || level < minimum {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %-5s %s\n", timestamp, level, fmt.Sprintf(format, args...))
}

// Debugf logs at LevelDebug.
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func Warnf(format string, args ...any) { logf(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }
