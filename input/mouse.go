package input

import (
	"strconv"
	"strings"
)

// decodeButtonCode splits an SGR/X10/URxvt button code into the button
// (or wheel direction) and modifier bits it encodes. Bits 2-4 (0x04, 0x08,
// 0x10) are shift/alt/ctrl; the base button lives in bits 0-1 and 5-6
// (mask 0x63), with 32/35 reserved for motion-only reports.
func decodeButtonCode(code int) (MouseButton, Modifiers, bool) {
	modifiers := Modifiers{
		Shift: code&4 != 0,
		Alt:   code&8 != 0,
		Ctrl:  code&16 != 0,
	}

	base := code & 0x63
	switch base {
	case 0:
		return ButtonLeft, modifiers, true
	case 1:
		return ButtonMiddle, modifiers, true
	case 2:
		return ButtonRight, modifiers, true
	case 64:
		return ButtonWheelUp, modifiers, true
	case 65:
		return ButtonWheelDown, modifiers, true
	case 32, 35:
		return ButtonNone, modifiers, true // motion, no button change
	default:
		return ButtonNone, modifiers, false
	}
}

// parseSGRMouse decodes the body of an SGR (1006) mouse report:
// "<button;x;y" followed by 'M' (press) or 'm' (release). body excludes
// the leading "\x1b[" and the trailing M/m.
func parseSGRMouse(body string, pressed bool) (MouseEvent, bool) {
	body = strings.TrimPrefix(body, "<")
	parts := strings.Split(body, ";")
	if len(parts) != 3 {
		return MouseEvent{}, false
	}

	code, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return MouseEvent{}, false
	}

	button, modifiers, ok := decodeButtonCode(code)
	if !ok {
		return MouseEvent{}, false
	}
	if button == ButtonWheelUp || button == ButtonWheelDown {
		pressed = true
	}

	return MouseEvent{Button: button, X: x - 1, Y: y - 1, Pressed: pressed, Modifiers: modifiers}, true
}

// parseX10Mouse decodes an X10 (1000) mouse report: three raw bytes
// (button, x, y), each offset by +32, always representing a press.
func parseX10Mouse(data [3]byte) (MouseEvent, bool) {
	code := int(data[0]) - 32
	x := int(data[1]) - 32 - 1
	y := int(data[2]) - 32 - 1

	button, modifiers, ok := decodeButtonCode(code)
	if !ok {
		return MouseEvent{}, false
	}

	return MouseEvent{Button: button, X: x, Y: y, Pressed: true, Modifiers: modifiers}, true
}

// parseURxvtMouse decodes a URxvt (1015) mouse report body: "button;x;y",
// no angle-bracket prefix, always terminated by 'M', always a press (URxvt
// does not distinguish press from release).
func parseURxvtMouse(body string) (MouseEvent, bool) {
	parts := strings.Split(body, ";")
	if len(parts) != 3 {
		return MouseEvent{}, false
	}

	code, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return MouseEvent{}, false
	}

	button, modifiers, ok := decodeButtonCode(code)
	if !ok {
		return MouseEvent{}, false
	}

	return MouseEvent{Button: button, X: x - 1, Y: y - 1, Pressed: true, Modifiers: modifiers}, true
}
