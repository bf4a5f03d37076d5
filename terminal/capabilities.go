package terminal

import (
	"os"
	"strings"
)

// ColorDepth is the number of simultaneous colors a terminal can render.
type ColorDepth int

const (
	ColorDepthNone      ColorDepth = 0
	ColorDepth8         ColorDepth = 8
	ColorDepth256       ColorDepth = 256
	ColorDepthTrueColor ColorDepth = 16777216
)

func (cd ColorDepth) String() string {
	switch cd {
	case ColorDepthNone:
		return "none"
	case ColorDepth8:
		return "8 colors"
	case ColorDepth256:
		return "256 colors"
	case ColorDepthTrueColor:
		return "true color"
	default:
		return "unknown"
	}
}

// Capabilities describes what the terminal a Backend talks to is believed
// to support, detected from environment variables rather than queried
// from the terminal itself (detection has no round-trip cost, so a
// binding can consult it before the first frame).
type Capabilities struct {
	ColorDepth    ColorDepth
	SupportsMouse bool
}

// DetectCapabilities inspects the process environment (NO_COLOR,
// FORCE_COLOR, COLORTERM, TERM_PROGRAM, TERM, WT_SESSION) and returns its
// best guess at the terminal's capabilities.
//
// Detection priority:
//  1. NO_COLOR disables color entirely.
//  2. FORCE_COLOR overrides detection with an explicit level.
//  3. Otherwise, known terminal programs and TERM are used to guess a
//     color depth, conservatively defaulting to 8 colors.
func DetectCapabilities() Capabilities {
	if os.Getenv("NO_COLOR") != "" {
		return Capabilities{ColorDepth: ColorDepthNone}
	}
	if fc := os.Getenv("FORCE_COLOR"); fc != "" {
		return Capabilities{ColorDepth: parseForceColor(fc), SupportsMouse: true}
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return Capabilities{ColorDepth: ColorDepthNone}
	}

	return Capabilities{ColorDepth: detectColorDepth(), SupportsMouse: true}
}

func detectColorDepth() ColorDepth {
	if os.Getenv("WT_SESSION") != "" {
		return ColorDepthTrueColor
	}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return ColorDepthTrueColor
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "vscode", "Hyper", "WarpTerminal":
		return ColorDepthTrueColor
	case "Apple_Terminal":
		return ColorDepth256
	}

	term := os.Getenv("TERM")
	switch {
	case strings.Contains(term, "256color"):
		return ColorDepth256
	case strings.Contains(term, "color"):
		return ColorDepth8
	default:
		return ColorDepth8 // conservative default
	}
}

func parseForceColor(fc string) ColorDepth {
	switch fc {
	case "0":
		return ColorDepthNone
	case "1":
		return ColorDepth8
	case "2":
		return ColorDepth256
	default:
		return ColorDepthTrueColor
	}
}
