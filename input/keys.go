package input

// parseSingleByte decodes a lone byte outside any escape sequence: a
// printable character, a Ctrl+letter combination, or one of the named
// control keys. Returns false if the byte has no key mapping.
func parseSingleByte(b byte) (KeyboardEvent, bool) {
	switch b {
	case 0x0D, 0x0A: // CR or LF
		return KeyboardEvent{Key: KeyEnter}, true
	case 0x7F, 0x08: // DEL or BS
		return KeyboardEvent{Key: KeyBackspace}, true
	case 0x09: // Tab, also Ctrl+I
		return KeyboardEvent{Key: KeyTab}, true
	case 0x1B: // Esc alone (idle-timeout flush path)
		return KeyboardEvent{Key: KeyEsc}, true
	case 0x20:
		return KeyboardEvent{Key: KeySpace}, true
	}

	// Ctrl+A..Ctrl+Z (0x01-0x1A), excluding the named keys above.
	if b >= 1 && b <= 26 {
		return KeyboardEvent{Key: KeyRune, Rune: rune('a' + b - 1), Modifiers: Modifiers{Ctrl: true}}, true
	}

	if b >= 32 && b <= 126 {
		return KeyboardEvent{Key: KeyRune, Rune: rune(b)}, true
	}

	return KeyboardEvent{}, false
}

// csiFinalToKey maps a bare CSI final byte (no numeric parameter) to a key.
func csiFinalToKey(final byte) (Key, bool) {
	switch final {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return 0, false
}

// ss3ToKey maps an SS3 (ESC O <byte>) final byte to a key (F1-F4).
func ss3ToKey(final byte) (Key, bool) {
	switch final {
	case 'P':
		return KeyF1, true
	case 'Q':
		return KeyF2, true
	case 'R':
		return KeyF3, true
	case 'S':
		return KeyF4, true
	}
	return 0, false
}

// tildeParamToKey maps the numeric parameter of a `CSI <n> ~` sequence to
// a key (Home/Insert/Delete/End/PgUp/PgDown/F5-F12).
func tildeParamToKey(n int) (Key, bool) {
	switch n {
	case 1:
		return KeyHome, true
	case 2:
		return KeyInsert, true
	case 3:
		return KeyDelete, true
	case 4:
		return KeyEnd, true
	case 5:
		return KeyPgUp, true
	case 6:
		return KeyPgDown, true
	case 15:
		return KeyF5, true
	case 17:
		return KeyF6, true
	case 18:
		return KeyF7, true
	case 19:
		return KeyF8, true
	case 20:
		return KeyF9, true
	case 21:
		return KeyF10, true
	case 23:
		return KeyF11, true
	case 24:
		return KeyF12, true
	}
	return 0, false
}

// modifierBitsToModifiers decodes the xterm modifier parameter convention
// (value - 1 is a bitmask: 1=shift, 2=alt, 4=ctrl) used by the modified
// arrow/function-key form `CSI 1 ; <mod> <final>`.
func modifierBitsToModifiers(mod int) Modifiers {
	bits := mod - 1
	return Modifiers{
		Shift: bits&1 != 0,
		Alt:   bits&2 != 0,
		Ctrl:  bits&4 != 0,
	}
}
