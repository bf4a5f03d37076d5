// Package render holds the cell buffer, the clipped drawing surface built on
// top of it, and the ANSI serialization that turns a Buffer into bytes on
// the wire. Every widget paints through a Canvas; every Canvas writes into a
// Buffer; every frame a Buffer is diffed and flushed through ansi.Writer.
package render

import (
	"fmt"
	"strings"
)

// Color is a 24-bit RGB terminal color. Value type, immutable.
type Color struct {
	R, G, B uint8
}

// NewColor builds an RGB color.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Equals reports whether two colors are the same RGB triple.
func (c Color) Equals(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d)", c.R, c.G, c.B)
}

// Predefined colors, the common palette every widget reaches for.
var (
	ColorBlack   = NewColor(0, 0, 0)
	ColorRed     = NewColor(255, 0, 0)
	ColorGreen   = NewColor(0, 255, 0)
	ColorYellow  = NewColor(255, 255, 0)
	ColorBlue    = NewColor(0, 0, 255)
	ColorMagenta = NewColor(255, 0, 255)
	ColorCyan    = NewColor(0, 255, 255)
	ColorWhite   = NewColor(255, 255, 255)
	ColorGray    = NewColor(128, 128, 128)
)

// Style is the full set of SGR attributes a Cell can carry. Immutable,
// value semantics; zero value is "no styling" (the default cell style).
type Style struct {
	fg        *Color
	bg        *Color
	bold      bool
	italic    bool
	underline bool
	reverse   bool
	dim       bool
	blink     bool
	strike    bool
}

// NewStyle returns the empty style (default foreground/background, no attributes).
func NewStyle() Style {
	return Style{}
}

// Foreground returns the foreground color, nil if unset.
func (s Style) Foreground() *Color { return s.fg }

// Background returns the background color, nil if unset.
func (s Style) Background() *Color { return s.bg }

// Bold reports whether bold is set.
func (s Style) Bold() bool { return s.bold }

// Italic reports whether italic is set.
func (s Style) Italic() bool { return s.italic }

// Underline reports whether underline is set.
func (s Style) Underline() bool { return s.underline }

// Reverse reports whether reverse video is set.
func (s Style) Reverse() bool { return s.reverse }

// Dim reports whether dim is set.
func (s Style) Dim() bool { return s.dim }

// Blink reports whether blink is set.
func (s Style) Blink() bool { return s.blink }

// Strike reports whether strikethrough is set.
func (s Style) Strike() bool { return s.strike }

// WithFg returns a copy with the foreground color set.
func (s Style) WithFg(c Color) Style { s.fg = &c; return s }

// WithBg returns a copy with the background color set.
func (s Style) WithBg(c Color) Style { s.bg = &c; return s }

// WithBold returns a copy with bold toggled.
func (s Style) WithBold(v bool) Style { s.bold = v; return s }

// WithItalic returns a copy with italic toggled.
func (s Style) WithItalic(v bool) Style { s.italic = v; return s }

// WithUnderline returns a copy with underline toggled.
func (s Style) WithUnderline(v bool) Style { s.underline = v; return s }

// WithReverse returns a copy with reverse video toggled.
func (s Style) WithReverse(v bool) Style { s.reverse = v; return s }

// WithDim returns a copy with dim toggled.
func (s Style) WithDim(v bool) Style { s.dim = v; return s }

// WithBlink returns a copy with blink toggled.
func (s Style) WithBlink(v bool) Style { s.blink = v; return s }

// WithStrike returns a copy with strikethrough toggled.
func (s Style) WithStrike(v bool) Style { s.strike = v; return s }

// Equals reports whether two styles render identically.
func (s Style) Equals(other Style) bool {
	if (s.fg == nil) != (other.fg == nil) {
		return false
	}
	if s.fg != nil && !s.fg.Equals(*other.fg) {
		return false
	}
	if (s.bg == nil) != (other.bg == nil) {
		return false
	}
	if s.bg != nil && !s.bg.Equals(*other.bg) {
		return false
	}
	return s.bold == other.bold &&
		s.italic == other.italic &&
		s.underline == other.underline &&
		s.reverse == other.reverse &&
		s.dim == other.dim &&
		s.blink == other.blink &&
		s.strike == other.strike
}

// IsEmpty reports whether this is the default style (no SGR bytes needed).
func (s Style) IsEmpty() bool {
	return s.fg == nil && s.bg == nil &&
		!s.bold && !s.italic && !s.underline && !s.reverse &&
		!s.dim && !s.blink && !s.strike
}

// ToSGR renders the SGR parameter sequence for this style, empty if the
// style is empty. Does not include the leading CSI or trailing 'm'.
func (s Style) ToSGR() string {
	if s.IsEmpty() {
		return ""
	}

	var codes []string
	if s.fg != nil {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", s.fg.R, s.fg.G, s.fg.B))
	}
	if s.bg != nil {
		codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", s.bg.R, s.bg.G, s.bg.B))
	}
	if s.bold {
		codes = append(codes, "1")
	}
	if s.dim {
		codes = append(codes, "2")
	}
	if s.italic {
		codes = append(codes, "3")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.blink {
		codes = append(codes, "5")
	}
	if s.reverse {
		codes = append(codes, "7")
	}
	if s.strike {
		codes = append(codes, "9")
	}
	return strings.Join(codes, ";")
}
