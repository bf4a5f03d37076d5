package testing

import (
	"io"
	"sync"

	"github.com/cindertui/cinder/terminal"
)

// NullBackend is a no-op implementation of terminal.Backend: every write
// and mode switch succeeds silently, Size reports a fixed default, and
// Read blocks until Close, then returns io.EOF — mirroring how a real
// backend's reader unblocks on shutdown.
type NullBackend struct {
	size      terminal.Size
	resizeCh  chan terminal.Size
	done      chan struct{}
	closeOnce sync.Once
}

// NewNullBackend creates a no-op backend reporting an 80x24 terminal.
func NewNullBackend() *NullBackend {
	return &NullBackend{
		size:     terminal.Size{Width: 80, Height: 24},
		resizeCh: make(chan terminal.Size),
		done:     make(chan struct{}),
	}
}

// Read blocks until Close, then returns io.EOF.
func (n *NullBackend) Read(_ []byte) (int, error) {
	<-n.done
	return 0, io.EOF
}

// Write discards p and reports success.
func (n *NullBackend) Write(p []byte) (int, error) { return len(p), nil }

// EnterRawMode does nothing (null implementation).
func (n *NullBackend) EnterRawMode() error { return nil }

// ExitRawMode does nothing (null implementation).
func (n *NullBackend) ExitRawMode() error { return nil }

// EnterAltScreen does nothing (null implementation).
func (n *NullBackend) EnterAltScreen() error { return nil }

// ExitAltScreen does nothing (null implementation).
func (n *NullBackend) ExitAltScreen() error { return nil }

// HideCursor does nothing (null implementation).
func (n *NullBackend) HideCursor() error { return nil }

// ShowCursor does nothing (null implementation).
func (n *NullBackend) ShowCursor() error { return nil }

// Size returns a fixed 80x24 (null implementation).
func (n *NullBackend) Size() (terminal.Size, error) { return n.size, nil }

// Resize returns a channel that never receives (null implementation).
func (n *NullBackend) Resize() <-chan terminal.Size { return n.resizeCh }

// Close unblocks any pending Read with io.EOF.
func (n *NullBackend) Close() error {
	n.closeOnce.Do(func() { close(n.done) })
	return nil
}
