package ansi

import (
	"bufio"
	"io"
	"sync"

	"github.com/cindertui/cinder/render"
)

// Writer serializes Buffer content to ANSI bytes, tracking cursor position
// and current SGR style so it only emits the escapes needed to move between
// them. One Writer per terminal backend, reused across frames.
type Writer struct {
	mu           sync.Mutex
	buf          *bufio.Writer
	currentX     int
	currentY     int
	currentStyle render.Style
}

// NewWriter wraps output in a buffered ANSI writer.
func NewWriter(output io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(output)}
}

// MoveCursor emits a cursor move if (x, y) differs from the writer's
// tracked position.
func (w *Writer) MoveCursor(x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.moveCursorLocked(x, y)
}

func (w *Writer) moveCursorLocked(x, y int) error {
	if x == w.currentX && y == w.currentY {
		return nil
	}
	if _, err := w.buf.WriteString(MoveCursor(x, y)); err != nil {
		return err
	}
	w.currentX, w.currentY = x, y
	return nil
}

// WriteCell emits one cell at the writer's current position, advancing the
// tracked column by the cell's width. Continuation cells are never emitted
// by WriteFrame directly; a caller that wants to write one verbatim may
// still do so here.
func (w *Writer) WriteCell(cell render.Cell) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeCellLocked(cell)
}

func (w *Writer) writeCellLocked(cell render.Cell) error {
	if !cell.Style.Equals(w.currentStyle) {
		if err := w.setStyleLocked(cell.Style); err != nil {
			return err
		}
	}
	if _, err := w.buf.WriteRune(cell.Char); err != nil {
		return err
	}
	w.currentX += cell.Width()
	return nil
}

func (w *Writer) setStyleLocked(style render.Style) error {
	if style.IsEmpty() && !w.currentStyle.IsEmpty() {
		if _, err := w.buf.WriteString(Reset); err != nil {
			return err
		}
	} else if sgr := SGR(style.ToSGR()); sgr != "" {
		if _, err := w.buf.WriteString(sgr); err != nil {
			return err
		}
	}
	w.currentStyle = style
	return nil
}

// WriteFrame emits buf as a full frame per the binding's flush algorithm:
// move to (0,0), then for each row emit every non-continuation cell (style
// prefix only when it changes, reset when returning to the default style),
// and a newline between rows but not after the last.
func (w *Writer) WriteFrame(buf *render.Buffer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.moveCursorLocked(0, 0); err != nil {
		return err
	}

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Get(x, y)
			if cell.IsContinuation() {
				continue
			}
			if err := w.writeCellLocked(cell); err != nil {
				return err
			}
		}
		if y < buf.Height()-1 {
			if _, err := w.buf.WriteString("\r\n"); err != nil {
				return err
			}
			w.currentX, w.currentY = 0, y+1
		}
	}
	return nil
}

// WriteDiff emits only the cells that changed between prev and next,
// moving the cursor to each changed run instead of redrawing the whole
// frame. Falls back to a full WriteFrame when the dimensions differ.
func (w *Writer) WriteDiff(prev, next *render.Buffer) error {
	if prev == nil || prev.Width() != next.Width() || prev.Height() != next.Height() {
		return w.WriteFrame(next)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for y := 0; y < next.Height(); y++ {
		x := 0
		for x < next.Width() {
			nc := next.Get(x, y)
			if nc.Equals(prev.Get(x, y)) {
				x++
				continue
			}
			if nc.IsContinuation() {
				x++
				continue
			}
			if err := w.moveCursorLocked(x, y); err != nil {
				return err
			}
			if err := w.writeCellLocked(nc); err != nil {
				return err
			}
			x += max(nc.Width(), 1)
		}
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// HideCursor hides the terminal cursor.
func (w *Writer) HideCursor() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.buf.WriteString(CursorHide)
	return err
}

// ShowCursor shows the terminal cursor.
func (w *Writer) ShowCursor() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.buf.WriteString(CursorShow)
	return err
}

// Clear emits a full-screen clear and resets the writer's tracked state.
func (w *Writer) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.buf.WriteString(ClearScreen); err != nil {
		return err
	}
	w.currentX, w.currentY = 0, 0
	w.currentStyle = render.NewStyle()
	return nil
}

// WriteRaw writes raw bytes (e.g. mouse-tracking enable sequences)
// without touching cursor/style tracking.
func (w *Writer) WriteRaw(seq string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.buf.WriteString(seq)
	return err
}

// Flush flushes buffered bytes to the underlying writer.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Flush()
}
