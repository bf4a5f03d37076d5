//go:build unix || darwin

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/cindertui/cinder/render/ansi"
)

// ANSIBackend implements Backend over an *os.File using ANSI escape
// sequences, golang.org/x/term for raw mode, and a SIGWINCH+poll resize
// watcher.
type ANSIBackend struct {
	in, out *os.File

	mu           sync.Mutex
	rawState     *term.State
	resizeCh     chan Size
	stopWatcher  chan struct{}
	watcherOnce  sync.Once
	pollInterval time.Duration
}

// NewANSIBackend returns a Backend reading from in and writing to out
// (typically os.Stdin/os.Stdout). The resize watcher's poll fallback
// defaults to one second; call SetPollInterval before the first Resize
// call to change it.
func NewANSIBackend(in, out *os.File) *ANSIBackend {
	return &ANSIBackend{
		in:           in,
		out:          out,
		resizeCh:     make(chan Size, 1),
		stopWatcher:  make(chan struct{}),
		pollInterval: time.Second,
	}
}

// SetPollInterval overrides the resize watcher's poll fallback period.
// It has no effect once the watcher has already started; callers set it
// before the first Resize call, which is what binding.New does with
// Config.PollInterval.
func (b *ANSIBackend) SetPollInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	b.mu.Lock()
	b.pollInterval = d
	b.mu.Unlock()
}

func (b *ANSIBackend) Read(p []byte) (int, error)  { return b.in.Read(p) }
func (b *ANSIBackend) Write(p []byte) (int, error) { return b.out.Write(p) }

// EnterRawMode puts the terminal into raw mode via term.MakeRaw, saving
// the prior state for ExitRawMode. No-op if in is not a TTY.
func (b *ANSIBackend) EnterRawMode() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	fd := int(b.in.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	b.rawState = state
	return nil
}

// ExitRawMode restores the terminal mode captured by EnterRawMode.
func (b *ANSIBackend) ExitRawMode() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.rawState == nil {
		return nil
	}
	err := term.Restore(int(b.in.Fd()), b.rawState)
	b.rawState = nil
	return err
}

func (b *ANSIBackend) EnterAltScreen() error {
	_, err := b.out.WriteString(ansi.AltScreenEnable)
	return err
}

func (b *ANSIBackend) ExitAltScreen() error {
	_, err := b.out.WriteString(ansi.AltScreenDisable)
	return err
}

func (b *ANSIBackend) HideCursor() error {
	_, err := b.out.WriteString(ansi.CursorHide)
	return err
}

func (b *ANSIBackend) ShowCursor() error {
	_, err := b.out.WriteString(ansi.CursorShow)
	return err
}

// Size queries the terminal's current dimensions via an ioctl winsize
// request.
func (b *ANSIBackend) Size() (Size, error) {
	ws, err := unix.IoctlGetWinsize(int(b.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Size{Width: 80, Height: 24}, err
	}
	return Size{Width: int(ws.Col), Height: int(ws.Row)}, nil
}

// Resize starts (on first call) a watcher goroutine that feeds SIGWINCH
// deliveries and, as a fallback for platforms or supervisors that don't
// deliver it, a poll every pollInterval (one second unless changed by
// SetPollInterval), into one channel.
func (b *ANSIBackend) Resize() <-chan Size {
	b.watcherOnce.Do(func() { go b.watchResize() })
	return b.resizeCh
}

func (b *ANSIBackend) watchResize() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	b.mu.Lock()
	interval := b.pollInterval
	b.mu.Unlock()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last, _ := b.Size()
	emit := func() {
		current, err := b.Size()
		if err != nil || current == last {
			return
		}
		last = current
		select {
		case b.resizeCh <- current:
		default:
			// Coalesce: a resize is already pending in the channel.
		}
	}

	for {
		select {
		case <-sigCh:
			emit()
		case <-ticker.C:
			emit()
		case <-b.stopWatcher:
			return
		}
	}
}

// Close stops the resize watcher goroutine.
func (b *ANSIBackend) Close() error {
	select {
	case <-b.stopWatcher:
		// already closed
	default:
		close(b.stopWatcher)
	}
	return nil
}
