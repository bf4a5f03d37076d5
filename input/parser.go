package input

// Parser accumulates raw bytes read from the terminal and decodes them
// into Events one at a time. It is not safe for concurrent use; the
// binding's scheduler owns a single Parser and feeds it from its read
// loop.
type Parser struct {
	buf []byte
}

// NewParser returns an empty Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Feed appends newly read bytes to the parser's internal buffer.
func (p *Parser) Feed(data []byte) {
	p.buf = append(p.buf, data...)
}

// Pending reports whether bytes are buffered waiting for more input to
// complete a sequence (used to decide whether an idle timeout should
// force a flush).
func (p *Parser) Pending() bool {
	return len(p.buf) > 0
}

// Next returns the next complete event buffered, and true, consuming the
// bytes it decoded from. Returns (nil, false) if the buffer is empty or
// holds only a partial sequence — callers should wait for more bytes (or,
// on an idle timeout, call FlushEscape).
func (p *Parser) Next() (Event, bool) {
	for len(p.buf) > 0 {
		event, consumed, ok := p.parseNext()
		if consumed == 0 {
			return nil, false // incomplete sequence, wait for more bytes
		}
		p.buf = p.buf[consumed:]
		if ok {
			return event, true
		}
		// consumed bytes but they didn't decode to anything (an
		// unrecognized sequence): keep draining.
	}
	return nil, false
}

// FlushEscape is called by the scheduler's idle timer when a lone pending
// ESC byte has sat in the buffer long enough that it must be a real Esc
// keypress rather than the start of a CSI/SS3 sequence.
func (p *Parser) FlushEscape() (Event, bool) {
	if len(p.buf) == 1 && p.buf[0] == 0x1B {
		p.buf = p.buf[:0]
		return KeyboardEvent{Key: KeyEsc}, true
	}
	return nil, false
}

// parseNext attempts to decode one event from the front of the buffer.
// Returns the event, the number of bytes consumed, and whether decoding
// succeeded. consumed == 0 means the buffer holds an incomplete sequence.
func (p *Parser) parseNext() (Event, int, bool) {
	b := p.buf
	if b[0] != 0x1B {
		event, ok := parseSingleByte(b[0])
		return event, 1, ok
	}

	if len(b) == 1 {
		return nil, 0, false // lone ESC so far, might grow into a sequence
	}

	switch b[1] {
	case 'O':
		if len(b) < 3 {
			return nil, 0, false
		}
		if key, ok := ss3ToKey(b[2]); ok {
			return KeyboardEvent{Key: key}, 3, true
		}
		return nil, 3, false

	case '[':
		return p.parseCSI(b)
	}

	// Unrecognized escape: treat the ESC alone as a key and keep the rest
	// of the buffer for the next call.
	return KeyboardEvent{Key: KeyEsc}, 1, true
}

// parseCSI decodes a CSI sequence starting at b[0]=='\x1b', b[1]=='['.
func (p *Parser) parseCSI(b []byte) (Event, int, bool) {
	if len(b) < 3 {
		return nil, 0, false
	}

	// X10 mouse: ESC [ M <button> <x> <y>, three raw (possibly
	// non-printable) bytes following 'M'.
	if b[2] == 'M' {
		if len(b) < 6 {
			return nil, 0, false
		}
		event, ok := parseX10Mouse([3]byte{b[3], b[4], b[5]})
		return event, 6, ok
	}

	// Scan for the final byte: SGR/URxvt reports terminate in 'M'/'m'
	// after a digit-and-semicolon body (optionally '<'-prefixed for SGR);
	// CSI key sequences terminate in a letter or '~'.
	i := 2
	for i < len(b) {
		c := b[i]
		if (c >= '0' && c <= '9') || c == ';' || c == '<' {
			i++
			continue
		}
		break
	}
	if i >= len(b) {
		return nil, 0, false // final byte not arrived yet
	}

	final := b[i]
	body := string(b[2:i])
	total := i + 1

	switch final {
	case 'M', 'm':
		if len(body) > 0 && body[0] == '<' {
			event, ok := parseSGRMouse(body, final == 'M')
			return event, total, ok
		}
		event, ok := parseURxvtMouse(body)
		return event, total, ok

	case '~':
		n := atoiOr(body, -1)
		if key, ok := tildeParamToKey(n); ok {
			return KeyboardEvent{Key: key}, total, true
		}
		return nil, total, false

	default:
		// Modified form: CSI 1 ; <mod> <final>.
		if key, mods, ok := parseModifiedKey(body, final); ok {
			return KeyboardEvent{Key: key, Modifiers: mods}, total, true
		}
		if key, ok := csiFinalToKey(final); ok {
			return KeyboardEvent{Key: key}, total, true
		}
		return nil, total, false
	}
}

// parseModifiedKey handles "1;<mod>" bodies for modified arrow/Home/End/F1-F4
// sequences (CSI 1 ; <mod> A, etc.).
func parseModifiedKey(body string, final byte) (Key, Modifiers, bool) {
	var prefix, modStr string
	idx := -1
	for i := 0; i < len(body); i++ {
		if body[i] == ';' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, Modifiers{}, false
	}
	prefix, modStr = body[:idx], body[idx+1:]
	if prefix != "1" {
		return 0, Modifiers{}, false
	}

	mod := atoiOr(modStr, -1)
	if mod < 0 {
		return 0, Modifiers{}, false
	}

	key, ok := csiFinalToKey(final)
	if !ok {
		key, ok = ss3ToKey(final)
	}
	if !ok {
		return 0, Modifiers{}, false
	}

	return key, modifierBitsToModifiers(mod), true
}

func atoiOr(s string, fallback int) int {
	n := 0
	if s == "" {
		return fallback
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fallback
		}
		n = n*10 + int(s[i]-'0')
	}
	return n
}
