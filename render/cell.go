package render

import "github.com/cindertui/cinder/unicodewidth"

// ContinuationMarker is the zero-width space placed in the cell immediately
// to the right of a double-width glyph. Continuation cells carry no glyph
// of their own and MUST be skipped during ANSI emission.
const ContinuationMarker rune = '​'

// Cell is one terminal character position: a codepoint (or the reserved
// continuation marker) plus its style. Value type, immutable.
type Cell struct {
	Char  rune
	Style Style
	width int
}

// NewCell builds a cell for char, computing its display width.
func NewCell(char rune, style Style) Cell {
	return Cell{Char: char, Style: style, width: unicodewidth.RuneWidth(char)}
}

// NewEmptyCell is the default cell: a space in the default style.
func NewEmptyCell() Cell {
	return Cell{Char: ' ', Style: NewStyle(), width: 1}
}

// continuationCell is the reserved right-hand half of a double-width glyph.
func continuationCell(style Style) Cell {
	return Cell{Char: ContinuationMarker, Style: style, width: 0}
}

// Width returns the cell's display width (0, 1, or 2).
func (c Cell) Width() int { return c.width }

// IsContinuation reports whether c is a continuation marker cell.
func (c Cell) IsContinuation() bool { return c.Char == ContinuationMarker }

// IsEmpty reports whether c is the default cell (space, no styling).
func (c Cell) IsEmpty() bool {
	return c.Char == ' ' && c.Style.IsEmpty()
}

// Equals reports whether two cells render identically.
func (c Cell) Equals(other Cell) bool {
	return c.Char == other.Char && c.width == other.width && c.Style.Equals(other.Style)
}
