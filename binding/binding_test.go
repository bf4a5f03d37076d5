package binding

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/terminal"
	"github.com/cindertui/cinder/ui"
)

// fakeBackend is a minimal in-memory terminal.Backend for scheduler tests:
// Read delivers bytes fed via feed(), Write/mode calls are recorded, and
// Resize never fires unless resizeCh is sent to directly.
type fakeBackend struct {
	mu        sync.Mutex
	in        chan byte
	out       bytes.Buffer
	size      terminal.Size
	resizeCh  chan terminal.Size
	closed    bool
	rawMode   int
	altScreen int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		in:       make(chan byte, 4096),
		size:     terminal.Size{Width: 80, Height: 24},
		resizeCh: make(chan terminal.Size, 1),
	}
}

func (f *fakeBackend) feed(b []byte) {
	for _, c := range b {
		f.in <- c
	}
}

func (f *fakeBackend) Read(p []byte) (int, error) {
	b, ok := <-f.in
	if !ok {
		return 0, context.Canceled
	}
	p[0] = b
	n := 1
	for n < len(p) {
		select {
		case b := <-f.in:
			p[n] = b
			n++
		default:
			return n, nil
		}
	}
	return n, nil
}

func (f *fakeBackend) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Write(p)
}

func (f *fakeBackend) EnterRawMode() error   { f.rawMode++; return nil }
func (f *fakeBackend) ExitRawMode() error    { f.rawMode--; return nil }
func (f *fakeBackend) EnterAltScreen() error { f.altScreen++; return nil }
func (f *fakeBackend) ExitAltScreen() error  { f.altScreen--; return nil }
func (f *fakeBackend) HideCursor() error     { return nil }
func (f *fakeBackend) ShowCursor() error     { return nil }

func (f *fakeBackend) Size() (terminal.Size, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size, nil
}

func (f *fakeBackend) Resize() <-chan terminal.Size { return f.resizeCh }

func (f *fakeBackend) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		close(f.in)
		f.closed = true
	}
	return nil
}

// leafComponent is a trivial RenderObjectComponent standing in for a real
// widget in scheduler tests.
type leafComponent struct{}

func (leafComponent) RuntimeKind() string { return "binding-test-leaf" }
func (leafComponent) Key() ui.Key         { return ui.Key{} }
func (leafComponent) CreateRenderObject() ui.RenderObject {
	l := &leafRenderObject{}
	l.SetSelf(l)
	return l
}
func (leafComponent) UpdateRenderObject(ui.RenderObject) {}
func (leafComponent) ChildComponents() []ui.Component    { return nil }

type leafRenderObject struct {
	ui.BaseRenderObject
	painted int
}

func (l *leafRenderObject) Layout(c ui.Constraints) ui.Size {
	s := c.Constrain(ui.Size{Width: 1, Height: 1})
	l.SetSize(s)
	return s
}
func (l *leafRenderObject) Paint(canvas *render.Canvas, offset render.Offset) { l.painted++ }
func (l *leafRenderObject) Children() []ui.RenderObject                      { return nil }

func TestBindingDrawsInitialFrameOnRun(t *testing.T) {
	backend := newFakeBackend()
	b := New(backend, WithoutAltScreen())
	b.AttachRoot(leafComponent{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = b.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	backend.mu.Lock()
	wrote := backend.out.Len() > 0
	backend.mu.Unlock()
	if !wrote {
		t.Fatal("expected at least one frame to be written")
	}
}

func TestBindingShutsDownOnCtrlC(t *testing.T) {
	backend := newFakeBackend()
	b := New(backend, WithoutAltScreen())
	b.AttachRoot(leafComponent{})

	done := make(chan struct{})
	go func() {
		_ = b.Run(context.Background())
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	backend.feed([]byte{0x03}) // Ctrl+C

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Ctrl+C to shut down the binding")
	}
}

func TestBindingShutsDownOnEscape(t *testing.T) {
	backend := newFakeBackend()
	b := New(backend, WithoutAltScreen())
	b.AttachRoot(leafComponent{})

	done := make(chan struct{})
	go func() {
		_ = b.Run(context.Background())
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	backend.feed([]byte{0x1b})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected a flushed lone Escape to shut down the binding")
	}
}

func TestBindingCoalescesMultipleScheduleFrameCalls(t *testing.T) {
	backend := newFakeBackend()
	b := New(backend, WithoutAltScreen())
	b.AttachRoot(leafComponent{})

	for i := 0; i < 5; i++ {
		b.scheduleFrame()
	}

	if len(b.frameRequested) != 1 {
		t.Fatalf("expected exactly one coalesced frame request, got %d", len(b.frameRequested))
	}
}

func TestBindingReactsToResize(t *testing.T) {
	backend := newFakeBackend()
	b := New(backend, WithoutAltScreen())
	b.AttachRoot(leafComponent{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = b.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	backend.mu.Lock()
	backend.size = terminal.Size{Width: 120, Height: 40}
	backend.mu.Unlock()
	backend.resizeCh <- terminal.Size{Width: 120, Height: 40}
	time.Sleep(20 * time.Millisecond)

	b.mu.Lock()
	size := b.size
	b.mu.Unlock()
	cancel()
	<-done

	if size.Width != 120 || size.Height != 40 {
		t.Fatalf("expected binding to pick up resize to 120x40, got %+v", size)
	}
}
