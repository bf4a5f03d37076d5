// Package input turns a raw terminal byte stream into typed keyboard and
// mouse events: CSI/SS3 key sequences, SGR (and, as enrichment, X10/URxvt)
// mouse reports. The Parser is stateful and incremental — bytes can arrive
// one at a time and partial sequences stay buffered until they complete.
package input

// Key names the logical key a KeyboardEvent carries. For a printable
// character, Key is KeyRune and the character itself is in Rune.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPgUp
	KeyPgDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifiers is the set of modifier keys held during an event.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Event is the sum type InputEvent = KeyboardEvent | MouseEvent.
type Event interface {
	isEvent()
}

// KeyboardEvent is a single key press, decoded from the input byte stream.
type KeyboardEvent struct {
	Key       Key
	Rune      rune // valid when Key == KeyRune
	Modifiers Modifiers
}

func (KeyboardEvent) isEvent() {}

// MouseButton identifies which button (or wheel direction) a MouseEvent
// reports. ButtonNone marks a motion-only report with no button change.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// MouseEvent is a single mouse report: a button transition, a wheel tick,
// or motion, at 0-based terminal cell coordinates.
type MouseEvent struct {
	Button    MouseButton
	X, Y      int
	Pressed   bool
	Modifiers Modifiers
}

func (MouseEvent) isEvent() {}
