package render

// Rect is an axis-aligned rectangle in cell units.
type Rect struct {
	X, Y, Width, Height int
}

// Offset is a relative position in cell units, used for paint offsets and
// draw_text positions given in canvas-local coordinates.
type Offset struct {
	X, Y int
}

// Canvas is a clipped drawing surface over a sub-rectangle of a Buffer.
// Widgets paint exclusively through a Canvas; every operation is clipped
// to the canvas's rect, and canvas-local coordinates are translated by the
// canvas's origin before reaching the underlying Buffer.
type Canvas struct {
	buffer *Buffer
	clip   Rect
}

// NewCanvas returns a Canvas over buffer, clipped to clip.
func NewCanvas(buffer *Buffer, clip Rect) *Canvas {
	return &Canvas{buffer: buffer, clip: clip}
}

// Bounds returns the canvas's clip rectangle.
func (c *Canvas) Bounds() Rect { return c.clip }

// Sub returns a new Canvas clipped to rect, given in this canvas's local
// coordinates, intersected with this canvas's own clip.
func (c *Canvas) Sub(rect Rect) *Canvas {
	abs := Rect{X: c.clip.X + rect.X, Y: c.clip.Y + rect.Y, Width: rect.Width, Height: rect.Height}
	return &Canvas{buffer: c.buffer, clip: intersect(abs, c.clip)}
}

func intersect(a, b Rect) Rect {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= c.clip.X && x < c.clip.X+c.clip.Width &&
		y >= c.clip.Y && y < c.clip.Y+c.clip.Height
}

// DrawText writes text at offset (canvas-local), clipped to the canvas
// rect. Advances by rune_width per codepoint; zero-width codepoints occupy
// no column and are not emitted as separate cells.
func (c *Canvas) DrawText(offset Offset, text string, style Style) {
	y := c.clip.Y + offset.Y
	if y < c.clip.Y || y >= c.clip.Y+c.clip.Height {
		return
	}

	cursor := c.clip.X + offset.X
	for _, r := range text {
		w := unicodeWidth(r)
		if w == 0 {
			continue
		}
		if cursor >= c.clip.X && cursor+w <= c.clip.X+c.clip.Width && c.inBounds(cursor, y) {
			c.buffer.SetCell(cursor, y, NewCell(r, style))
		} else if cursor >= c.clip.X+c.clip.Width {
			break
		}
		cursor += w
	}
}

// DrawRect paints every cell in rect (canvas-local) with a space in style,
// clipped to the canvas rect.
func (c *Canvas) DrawRect(rect Rect, style Style) {
	c.Fill(rect, NewCell(' ', style))
}

// Fill paints every cell in rect (canvas-local) with cell, clipped to the
// canvas rect.
func (c *Canvas) Fill(rect Rect, cell Cell) {
	for dy := 0; dy < rect.Height; dy++ {
		y := c.clip.Y + rect.Y + dy
		if y < c.clip.Y || y >= c.clip.Y+c.clip.Height {
			continue
		}
		for dx := 0; dx < rect.Width; dx++ {
			x := c.clip.X + rect.X + dx
			if x < c.clip.X || x >= c.clip.X+c.clip.Width {
				continue
			}
			c.buffer.SetCell(x, y, cell)
		}
	}
}

// Single-line box-drawing glyphs, per the spec's draw_border contract.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// DrawBorder draws a single-line box around rect (canvas-local), clipped
// to the canvas rect. rect must be at least 3x3 to have an interior; a
// rect one cell wide or tall draws only that line of corner and edge
// glyphs, and an empty rect draws nothing.
func (c *Canvas) DrawBorder(rect Rect, style Style) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}

	top, bottom := rect.Y, rect.Y+rect.Height-1
	left, right := rect.X, rect.X+rect.Width-1

	set := func(x, y int, r rune) {
		ax, ay := c.clip.X+x, c.clip.Y+y
		if c.inBounds(ax, ay) {
			c.buffer.SetCell(ax, ay, NewCell(r, style))
		}
	}

	if rect.Width == 1 && rect.Height == 1 {
		set(left, top, boxTopLeft)
		return
	}

	for x := left + 1; x < right; x++ {
		set(x, top, boxHorizontal)
		if rect.Height > 1 {
			set(x, bottom, boxHorizontal)
		}
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, boxVertical)
		if rect.Width > 1 {
			set(right, y, boxVertical)
		}
	}

	set(left, top, boxTopLeft)
	if rect.Width > 1 {
		set(right, top, boxTopRight)
	}
	if rect.Height > 1 {
		set(left, bottom, boxBottomLeft)
		if rect.Width > 1 {
			set(right, bottom, boxBottomRight)
		}
	}
}
