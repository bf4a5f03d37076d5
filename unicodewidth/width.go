// Package unicodewidth computes the terminal display width of runes and
// strings. Every other Cinder package that measures or aligns text goes
// through here: Cell construction, TerminalCanvas text drawing, and widget
// measurement all call RuneWidth/StringWidth rather than re-deriving width
// from first principles.
//
// Width calculation is tiered for performance, mirroring the approach the
// wider Go terminal-UI ecosystem takes:
//   - O(1) for ASCII and the common CJK/emoji blocks, via uniwidth.
//   - Explicit range overrides for the zero-width and emoji classes this
//     package's contract pins exactly (see RuneWidth doc).
//
// This package measures codepoints, not grapheme clusters: a ZWJ-joined
// sequence is the sum of its parts, never collapsed to one cluster. That
// is the width model the engine commits to (see StringWidth), so there is
// no grapheme-segmentation step here to keep in sync with it.
package unicodewidth

import "github.com/unilibs/uniwidth"

// RuneWidth returns the terminal display width of a single codepoint: 0, 1,
// or 2 columns.
//
// Contract (pinned by the testable properties this package must satisfy):
//   - Combining marks (U+0300-036F), ZWSP/ZWJ (U+200B-200D), and variation
//     selectors (U+FE00-FE0F) are width 0.
//   - CJK Unified Ideographs (U+4E00-9FFF), Hangul syllables (U+AC00-D7A3),
//     and the emoji blocks (Misc Symbols U+2600-26FF, Dingbats U+2700-27BF,
//     Misc Symbols and Arrows U+2B00-2BFF, and the whole SMP emoji range
//     U+1F000-1FFFF) are width 2.
//   - Control characters below U+0020, including TAB, are width 1: the
//     model measures raw columns, not post-expansion layout, so tab-stop
//     expansion is left to the caller.
//   - Everything else delegates to uniwidth's East-Asian-Width tables.
func RuneWidth(r rune) int {
	if r < 0x20 {
		return 1
	}

	switch {
	case r >= 0x0300 && r <= 0x036F:
		return 0
	case r >= 0x200B && r <= 0x200D:
		return 0
	case r >= 0xFE00 && r <= 0xFE0F:
		return 0
	case r >= 0x4E00 && r <= 0x9FFF:
		return 2
	case r >= 0xAC00 && r <= 0xD7A3:
		return 2
	case r >= 0x2600 && r <= 0x26FF:
		return 2
	case r >= 0x2700 && r <= 0x27BF:
		return 2
	case r >= 0x2B00 && r <= 0x2BFF:
		return 2
	case r >= 0x1F000 && r <= 0x1FFFF:
		return 2
	}

	return uniwidth.RuneWidth(r)
}

// StringWidth returns the sum of RuneWidth over every codepoint in s.
//
// This is a codepoint sum, not a grapheme-cluster measurement: a ZWJ-joined
// sequence (e.g. a family emoji) is measured as the sum of its parts, not
// collapsed to one cluster. That can overcount a single user-perceived
// character, but it is the width model this package commits to.
func StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += RuneWidth(r)
	}
	return width
}
