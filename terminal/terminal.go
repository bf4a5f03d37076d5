// Package terminal abstracts the physical terminal: raw mode, the
// alternate screen, cursor visibility, byte-level I/O, and size queries
// with change notification. The binding owns exactly one Backend.
package terminal

import (
	"io"
	"time"
)

// Size is a terminal's column/row dimensions.
type Size struct {
	Width, Height int
}

// Backend is everything the binding needs from the physical terminal.
// Read is expected to run on its own goroutine; Write and the mode/cursor
// calls are owned by the scheduler goroutine.
type Backend interface {
	io.Reader
	io.Writer

	// EnterRawMode disables line buffering and echo so input arrives
	// byte-by-byte. No-op (returns nil) if the backend is not a TTY.
	EnterRawMode() error
	// ExitRawMode restores the terminal's mode from before EnterRawMode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen() error
	// ExitAltScreen returns to the normal screen buffer.
	ExitAltScreen() error

	HideCursor() error
	ShowCursor() error

	// Size returns the current terminal dimensions.
	Size() (Size, error)

	// Resize returns a channel that receives a new Size whenever the
	// terminal is resized: fed by SIGWINCH where available, and by a
	// poll-based fallback everywhere else — both paths write to the same
	// channel so callers are oblivious to which one fired. Close stops
	// further sends; the channel itself is not closed.
	Resize() <-chan Size

	// Close stops the resize watcher and releases any OS resources.
	Close() error
}

// PollIntervalSetter is implemented by backends whose resize watcher falls
// back to polling Size on an interval. binding.New calls it, when the
// backend supports it, with Config.PollInterval before the watcher starts,
// so the fallback period isn't pinned to whatever default the backend
// happened to pick.
type PollIntervalSetter interface {
	SetPollInterval(d time.Duration)
}
