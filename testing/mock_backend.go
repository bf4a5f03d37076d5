package testing

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/cindertui/cinder/terminal"
)

// MockBackend is a recording implementation of terminal.Backend.
//
// Write, Size, and every mode-switching method record the method name
// (and, for Write, its argument) in Calls. Write also keeps the bytes for
// Written, and entering or exiting raw mode or the alternate screen twice
// in a row returns an error. Feed queues bytes for Read to return, so a
// test can script an input sequence without a real TTY.
//
// Thread-safe: can be fed and read from different goroutines, matching
// how a real binding separates its reader from its scheduler.
type MockBackend struct {
	mu        sync.Mutex
	Calls     []string
	written   bytes.Buffer
	input     bytes.Buffer
	readReady chan struct{}
	size      terminal.Size
	resizeCh  chan terminal.Size
	inRaw     bool
	inAlt     bool
	closed    bool
}

// NewMockBackend creates a mock backend at the given size (80x24 if zero).
func NewMockBackend(size terminal.Size) *MockBackend {
	if size.Width == 0 && size.Height == 0 {
		size = terminal.Size{Width: 80, Height: 24}
	}
	return &MockBackend{
		Calls:     make([]string, 0),
		readReady: make(chan struct{}, 1),
		size:      size,
		resizeCh:  make(chan terminal.Size, 1),
	}
}

func (m *MockBackend) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// CallCount returns the number of times a method was called.
func (m *MockBackend) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, call := range m.Calls {
		if call == method || len(call) > len(method) && call[:len(method)] == method && call[len(method)] == '(' {
			count++
		}
	}
	return count
}

// Reset clears all recorded calls and written bytes.
func (m *MockBackend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make([]string, 0)
	m.written.Reset()
}

// Written returns everything written to the backend so far.
func (m *MockBackend) Written() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.written.Bytes()...)
}

// Feed queues raw bytes for a subsequent Read, as if they arrived from
// the terminal.
func (m *MockBackend) Feed(data []byte) {
	m.mu.Lock()
	m.input.Write(data)
	m.mu.Unlock()
	select {
	case m.readReady <- struct{}{}:
	default:
	}
}

// Read implements io.Reader, serving bytes queued by Feed. It blocks
// until Feed is called or the backend is closed.
func (m *MockBackend) Read(p []byte) (int, error) {
	for {
		m.mu.Lock()
		if m.input.Len() > 0 {
			n, _ := m.input.Read(p)
			m.mu.Unlock()
			return n, nil
		}
		closed := m.closed
		m.mu.Unlock()
		if closed {
			return 0, io.EOF
		}
		<-m.readReady
	}
}

// Write implements io.Writer, recording the call and appending to the
// written buffer.
func (m *MockBackend) Write(p []byte) (int, error) {
	m.mu.Lock()
	m.written.Write(p)
	m.mu.Unlock()
	m.record(fmt.Sprintf("Write(%q)", p))
	return len(p), nil
}

// EnterRawMode enters raw mode (mock implementation).
func (m *MockBackend) EnterRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "EnterRawMode")
	if m.inRaw {
		return fmt.Errorf("testing: already in raw mode")
	}
	m.inRaw = true
	return nil
}

// ExitRawMode exits raw mode (mock implementation).
func (m *MockBackend) ExitRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "ExitRawMode")
	if !m.inRaw {
		return fmt.Errorf("testing: not in raw mode")
	}
	m.inRaw = false
	return nil
}

// EnterAltScreen enters the alternate screen buffer (mock implementation).
func (m *MockBackend) EnterAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "EnterAltScreen")
	if m.inAlt {
		return fmt.Errorf("testing: already in alternate screen")
	}
	m.inAlt = true
	return nil
}

// ExitAltScreen exits the alternate screen buffer (mock implementation).
func (m *MockBackend) ExitAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "ExitAltScreen")
	if !m.inAlt {
		return fmt.Errorf("testing: not in alternate screen")
	}
	m.inAlt = false
	return nil
}

// HideCursor hides the cursor (mock implementation).
func (m *MockBackend) HideCursor() error {
	m.record("HideCursor")
	return nil
}

// ShowCursor shows the cursor (mock implementation).
func (m *MockBackend) ShowCursor() error {
	m.record("ShowCursor")
	return nil
}

// Size returns the configured size (mock implementation).
func (m *MockBackend) Size() (terminal.Size, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "Size")
	return m.size, nil
}

// SetSize changes the size Size() reports, without pushing a resize
// notification. Use PushResize to also notify.
func (m *MockBackend) SetSize(size terminal.Size) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size = size
}

// PushResize updates the reported size and sends it on the Resize
// channel, as a real backend does when it observes SIGWINCH.
func (m *MockBackend) PushResize(size terminal.Size) {
	m.mu.Lock()
	m.size = size
	m.mu.Unlock()
	m.resizeCh <- size
}

// Resize returns the channel PushResize sends to.
func (m *MockBackend) Resize() <-chan terminal.Size {
	return m.resizeCh
}

// Close marks the backend closed, unblocking any pending Read.
func (m *MockBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "Close")
	if m.closed {
		return nil
	}
	m.closed = true
	select {
	case m.readReady <- struct{}{}:
	default:
	}
	return nil
}
