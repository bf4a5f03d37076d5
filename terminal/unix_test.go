//go:build unix || darwin

package terminal_test

import (
	"testing"
	"time"

	"github.com/creack/pty"

	"github.com/cindertui/cinder/terminal"
)

func TestANSIBackendRawModeRoundTrip(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open() error: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	backend := terminal.NewANSIBackend(tty, tty)
	defer backend.Close()

	if err := backend.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() error: %v", err)
	}
	if err := backend.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() error: %v", err)
	}
}

func TestANSIBackendSize(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open() error: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: 100, Rows: 40}); err != nil {
		t.Fatalf("pty.Setsize() error: %v", err)
	}

	backend := terminal.NewANSIBackend(tty, tty)
	defer backend.Close()

	size, err := backend.Size()
	if err != nil {
		t.Fatalf("Size() error: %v", err)
	}
	if size.Width != 100 || size.Height != 40 {
		t.Errorf("Size() = %+v, want {100 40}", size)
	}
}

func TestANSIBackendResizeNotification(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open() error: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: 80, Rows: 24}); err != nil {
		t.Fatalf("pty.Setsize() error: %v", err)
	}

	backend := terminal.NewANSIBackend(tty, tty)
	defer backend.Close()

	resizeCh := backend.Resize()

	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: 120, Rows: 50}); err != nil {
		t.Fatalf("pty.Setsize() error: %v", err)
	}

	select {
	case size := <-resizeCh:
		if size.Width != 120 || size.Height != 50 {
			t.Errorf("resize notification = %+v, want {120 50}", size)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for resize notification (poll fallback is 1s)")
	}
}
