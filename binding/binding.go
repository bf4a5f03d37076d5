package binding

import (
	"context"
	"sync"
	"time"

	"github.com/cindertui/cinder/input"
	"github.com/cindertui/cinder/render"
	"github.com/cindertui/cinder/render/ansi"
	"github.com/cindertui/cinder/terminal"
	"github.com/cindertui/cinder/ui"
)

// escFlushDelay is the idle timeout after which a lone buffered ESC byte
// is resolved to a KeyEsc event rather than held open waiting for a CSI
// continuation that will never come.
const escFlushDelay = 25 * time.Millisecond

// Binding is the TerminalBinding: it owns one terminal.Backend and one
// root Component, and runs the event loop that turns input into rebuilt,
// relaid-out, repainted, re-emitted frames.
type Binding struct {
	cfg      Config
	backend  terminal.Backend
	owner    *ui.PipelineOwner
	writer   *ansi.Writer
	parser   *input.Parser

	mu        sync.Mutex
	root      ui.Element
	prevFrame *render.Buffer
	size      terminal.Size
	frame     uint64

	frameRequested chan struct{}
	rawBytes       chan []byte
	inputCh        chan input.Event
	readErrCh      chan error
	quit           chan struct{}
	quitOnce       sync.Once
}

// New constructs a Binding over backend, applying opts on top of the
// default Config.
func New(backend terminal.Backend, opts ...Option) *Binding {
	cfg := resolveConfig(opts...)
	owner := ui.NewPipelineOwner()
	owner.Capabilities = cfg.Capabilities
	if setter, ok := backend.(terminal.PollIntervalSetter); ok {
		setter.SetPollInterval(cfg.PollInterval)
	}
	return &Binding{
		cfg:            cfg,
		backend:        backend,
		owner:          owner,
		writer:         ansi.NewWriter(backend),
		parser:         input.NewParser(),
		frameRequested: make(chan struct{}, 1),
		rawBytes:       make(chan []byte, 64),
		inputCh:        make(chan input.Event, 64),
		readErrCh:      make(chan error, 1),
		quit:           make(chan struct{}),
	}
}

// AttachRoot creates the root element from component and triggers its
// first build. Must be called before Run.
func (b *Binding) AttachRoot(component ui.Component) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.owner.OnNeedsVisualUpdate = b.scheduleFrame
	b.root = ui.UpdateChild(b.owner, nil, component)
}

// Run initializes the terminal, starts the event loop, and blocks until
// Shutdown is called or ctx is cancelled. It always restores the terminal
// before returning, even on error.
func (b *Binding) Run(ctx context.Context) error {
	if err := b.initialize(); err != nil {
		return err
	}
	defer b.shutdownTerminal()

	go b.readLoop()
	go b.parserLoop()

	b.scheduleFrame()

	ticker := time.NewTicker(b.cfg.FrameInterval)
	defer ticker.Stop()

	var lastDraw time.Time
	pending := false

	for {
		select {
		case <-ctx.Done():
			b.Shutdown()
			return nil

		case <-b.quit:
			return nil

		case sz := <-b.backend.Resize():
			b.mu.Lock()
			b.size = sz
			b.mu.Unlock()
			b.scheduleFrame()

		case ev := <-b.inputCh:
			b.routeEvent(ev)

		case err := <-b.readErrCh:
			b.cfg.ErrorSink(err, Trace{Frame: b.frame, Phase: "read"})
			b.Shutdown()
			return nil

		case <-b.frameRequested:
			if time.Since(lastDraw) < b.cfg.FrameInterval {
				pending = true
				continue
			}
			b.drawFrame()
			lastDraw = time.Now()

		case <-ticker.C:
			// Wall-clock ceiling: a frame requested within FrameInterval of
			// the previous one is drawn here, on the next tick. draw_frame
			// runs only when a frame has actually been requested.
			if pending {
				pending = false
				b.drawFrame()
				lastDraw = time.Now()
			}
		}
	}
}

// Shutdown cancels the event loop; safe to call multiple times and from
// any goroutine. The next loop iteration (or a blocked Run) exits.
func (b *Binding) Shutdown() {
	b.quitOnce.Do(func() { close(b.quit) })
}

// scheduleFrame arms a coalescing frame request: any number of calls
// between two drains of frameRequested produce exactly one draw_frame.
func (b *Binding) scheduleFrame() {
	select {
	case b.frameRequested <- struct{}{}:
	default:
	}
}

func (b *Binding) initialize() error {
	if err := b.backend.EnterRawMode(); err != nil {
		b.cfg.Logger.Warn().Err(err).Str("op", "enter_raw_mode").Msg("continuing without raw mode")
	}
	if b.cfg.AltScreen {
		if err := b.backend.EnterAltScreen(); err != nil {
			return err
		}
	}
	if err := b.backend.HideCursor(); err != nil {
		b.cfg.Logger.Warn().Err(err).Str("op", "hide_cursor").Msg("cursor may remain visible")
	}
	for _, seq := range []string{
		ansi.MouseX10Enable,
		ansi.MouseCellMotionEnable,
		ansi.MouseAllMotionEnable,
		ansi.MouseSGREnable,
	} {
		if err := b.writer.WriteRaw(seq); err != nil {
			return err
		}
	}
	if err := b.writer.Flush(); err != nil {
		return err
	}

	size, err := b.backend.Size()
	if err != nil {
		size = terminal.Size{Width: 80, Height: 24}
		b.cfg.Logger.Warn().Err(err).Str("op", "query_size").Msg("falling back to 80x24")
	}
	b.mu.Lock()
	b.size = size
	b.mu.Unlock()

	return nil
}

func (b *Binding) shutdownTerminal() {
	for _, seq := range []string{
		ansi.MouseX10Disable,
		ansi.MouseCellMotionDisable,
		ansi.MouseAllMotionDisable,
		ansi.MouseSGRDisable,
	} {
		_ = b.writer.WriteRaw(seq)
	}
	_ = b.writer.Flush()
	_ = b.backend.ShowCursor()
	if b.cfg.AltScreen {
		_ = b.backend.ExitAltScreen()
	}
	_ = b.backend.ExitRawMode()
	_ = b.backend.Close()
}

// readLoop only moves bytes off the backend and onto rawBytes; it never
// touches the Parser, so the blocking Read call can run concurrently with
// parserLoop's idle-timeout-driven Escape flush.
func (b *Binding) readLoop() {
	buf := make([]byte, 256)
	for {
		n, err := b.backend.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case b.rawBytes <- chunk:
			case <-b.quit:
				return
			}
		}
		if err != nil {
			select {
			case b.readErrCh <- err:
			case <-b.quit:
			}
			return
		}
		select {
		case <-b.quit:
			return
		default:
		}
	}
}

// parserLoop is the sole owner of the Parser: it feeds incoming byte
// chunks, drains complete events to inputCh, and arms an idle timer that
// resolves a lone buffered ESC byte to a KeyEsc event once no CSI/SS3
// continuation has arrived within escFlushDelay.
func (b *Binding) parserLoop() {
	escTimer := time.NewTimer(time.Hour)
	if !escTimer.Stop() {
		<-escTimer.C
	}
	defer escTimer.Stop()

	for {
		select {
		case chunk := <-b.rawBytes:
			b.parser.Feed(chunk)
			for {
				ev, ok := b.parser.Next()
				if !ok {
					break
				}
				select {
				case b.inputCh <- ev:
				case <-b.quit:
					return
				}
			}
			if b.parser.Pending() {
				escTimer.Reset(escFlushDelay)
			}

		case <-escTimer.C:
			if ev, ok := b.parser.FlushEscape(); ok {
				select {
				case b.inputCh <- ev:
				case <-b.quit:
					return
				}
			}

		case <-b.quit:
			return
		}
	}
}

// drawFrame implements spec.md §4.7's draw_frame: build dirty elements,
// query size, attach/layout/paint, then emit.
func (b *Binding) drawFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frame++

	b.rebuildDirty(b.root)

	size, err := b.backend.Size()
	if err == nil {
		b.size = size
	}

	buf := render.NewBuffer(b.size.Width, b.size.Height)
	root := b.root.NearestRenderObject()
	if root == nil {
		return
	}

	root.Attach(b.owner)

	constraints := ui.Tight(ui.Size{Width: b.size.Width, Height: b.size.Height})
	b.owner.FlushLayout(constraints, root)

	canvas := render.NewCanvas(buf, render.Rect{Width: b.size.Width, Height: b.size.Height})
	b.owner.FlushPaint(canvas, root)

	if err := b.writer.WriteDiff(b.prevFrame, buf); err != nil {
		b.cfg.ErrorSink(err, Trace{Frame: b.frame, Phase: "emit"})
		return
	}
	if err := b.writer.Flush(); err != nil {
		b.cfg.ErrorSink(err, Trace{Frame: b.frame, Phase: "emit"})
		return
	}
	b.prevFrame = buf
}

// rebuildDirty walks the element tree depth-first, rebuilding any element
// whose Dirty() is set. A parent rebuild reconciles its own children
// against a fresh Build, which subsumes any child rebuild that would
// otherwise have run separately.
func (b *Binding) rebuildDirty(el ui.Element) {
	if el == nil {
		return
	}
	if el.Dirty() {
		el.Rebuild(b.owner)
		return
	}
	for _, child := range el.Children() {
		b.rebuildDirty(child)
	}
}

// routeEvent dispatches one decoded input event: keyboard events go
// through depth-first-then-bubble routing with a root-level Ctrl+C/Escape
// shutdown default; mouse events hit-test the render tree.
func (b *Binding) routeEvent(ev input.Event) {
	switch e := ev.(type) {
	case input.KeyboardEvent:
		if isShutdownKey(e) {
			b.Shutdown()
			return
		}
		b.mu.Lock()
		root := b.root
		b.mu.Unlock()
		dispatchKeyboard(root, e)

	case input.MouseEvent:
		b.mu.Lock()
		root := b.root
		b.mu.Unlock()
		if root == nil {
			return
		}
		ro := root.NearestRenderObject()
		if ro == nil {
			return
		}
		dispatchMouse(ro, render.Offset{}, e)
	}
}

// isShutdownKey reports whether e is the framework-level default
// shutdown trigger: Ctrl+C, or a bare Escape.
func isShutdownKey(e input.KeyboardEvent) bool {
	if e.Key == input.KeyEsc {
		return true
	}
	return e.Key == input.KeyRune && e.Modifiers.Ctrl && (e.Rune == 'c' || e.Rune == 'C')
}

// KeyboardHandler is implemented by Component types that want a chance to
// consume a keyboard event during routing; dispatchKeyboard checks each
// element's current Component for it. Returning true stops propagation.
type KeyboardHandler interface {
	HandleKeyboard(input.KeyboardEvent) bool
}

// dispatchKeyboard visits the element tree depth-first; if no descendant
// handled the event, it is offered to focusable elements on the way back
// up. The first handler to return true wins.
func dispatchKeyboard(el ui.Element, ev input.KeyboardEvent) bool {
	if el == nil {
		return false
	}
	for _, child := range el.Children() {
		if dispatchKeyboard(child, ev) {
			return true
		}
	}
	if h, ok := el.Component().(KeyboardHandler); ok {
		return h.HandleKeyboard(ev)
	}
	return false
}

// MouseHandler is implemented by RenderObject types that want to consume
// mouse events that hit their painted bounds (e.g. a scrollable region).
type MouseHandler interface {
	HandleMouse(input.MouseEvent) bool
}

// worldRect reports the render object's last-painted bounds in tree
// (terminal) coordinates, given its accumulated parent offset.
func worldRect(ro ui.RenderObject, offset render.Offset) render.Rect {
	size := ro.Size()
	return render.Rect{X: offset.X, Y: offset.Y, Width: size.Width, Height: size.Height}
}

// dispatchMouse finds the innermost render object whose world rect
// contains the event's point, asks it to handle the event, and propagates
// outward (toward the root) if unhandled.
func dispatchMouse(ro ui.RenderObject, offset render.Offset, ev input.MouseEvent) bool {
	if ro == nil {
		return false
	}

	rect := worldRect(ro, offset)
	if ev.X < rect.X || ev.X >= rect.X+rect.Width || ev.Y < rect.Y || ev.Y >= rect.Y+rect.Height {
		return false
	}

	for _, child := range ro.Children() {
		childOffset := offset
		if pd := child.ParentData(); pd != nil {
			childOffset = render.Offset{X: offset.X + pd.Offset.X, Y: offset.Y + pd.Offset.Y}
		}
		if dispatchMouse(child, childOffset, ev) {
			return true
		}
	}

	if h, ok := ro.(MouseHandler); ok {
		return h.HandleMouse(ev)
	}
	return false
}
