package input_test

import (
	"testing"

	"github.com/cindertui/cinder/input"
)

func TestParserSingleBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want input.KeyboardEvent
	}{
		{"enter", []byte{0x0D}, input.KeyboardEvent{Key: input.KeyEnter}},
		{"backspace del", []byte{0x7F}, input.KeyboardEvent{Key: input.KeyBackspace}},
		{"tab", []byte{0x09}, input.KeyboardEvent{Key: input.KeyTab}},
		{"space", []byte{0x20}, input.KeyboardEvent{Key: input.KeySpace}},
		{"rune a", []byte("a"), input.KeyboardEvent{Key: input.KeyRune, Rune: 'a'}},
		{"ctrl+c", []byte{0x03}, input.KeyboardEvent{Key: input.KeyRune, Rune: 'c', Modifiers: input.Modifiers{Ctrl: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := input.NewParser()
			p.Feed(tt.in)
			got, ok := p.Next()
			if !ok {
				t.Fatalf("Next() returned ok=false for %v", tt.in)
			}
			ke, isKey := got.(input.KeyboardEvent)
			if !isKey {
				t.Fatalf("Next() = %#v, want KeyboardEvent", got)
			}
			if ke != tt.want {
				t.Errorf("Next() = %+v, want %+v", ke, tt.want)
			}
		})
	}
}

func TestParserArrowKeys(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want input.Key
	}{
		{"up", []byte{0x1B, '[', 'A'}, input.KeyUp},
		{"down", []byte{0x1B, '[', 'B'}, input.KeyDown},
		{"right", []byte{0x1B, '[', 'C'}, input.KeyRight},
		{"left", []byte{0x1B, '[', 'D'}, input.KeyLeft},
		{"home alt", []byte{0x1B, '[', 'H'}, input.KeyHome},
		{"end alt", []byte{0x1B, '[', 'F'}, input.KeyEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := input.NewParser()
			p.Feed(tt.in)
			got, ok := p.Next()
			if !ok {
				t.Fatalf("Next() returned ok=false for %v", tt.in)
			}
			ke := got.(input.KeyboardEvent)
			if ke.Key != tt.want {
				t.Errorf("Next().Key = %v, want %v", ke.Key, tt.want)
			}
		})
	}
}

func TestParserTildeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want input.Key
	}{
		{"home", []byte("\x1b[1~"), input.KeyHome},
		{"delete", []byte("\x1b[3~"), input.KeyDelete},
		{"pgup", []byte("\x1b[5~"), input.KeyPgUp},
		{"f5", []byte("\x1b[15~"), input.KeyF5},
		{"f12", []byte("\x1b[24~"), input.KeyF12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := input.NewParser()
			p.Feed(tt.in)
			got, ok := p.Next()
			if !ok {
				t.Fatalf("Next() returned ok=false for %v", tt.in)
			}
			if ke := got.(input.KeyboardEvent); ke.Key != tt.want {
				t.Errorf("Next().Key = %v, want %v", ke.Key, tt.want)
			}
		})
	}
}

func TestParserFunctionKeysSS3(t *testing.T) {
	p := input.NewParser()
	p.Feed([]byte{0x1B, 'O', 'P'})
	got, ok := p.Next()
	if !ok {
		t.Fatal("Next() returned ok=false")
	}
	if ke := got.(input.KeyboardEvent); ke.Key != input.KeyF1 {
		t.Errorf("Next().Key = %v, want KeyF1", ke.Key)
	}
}

func TestParserModifiedArrow(t *testing.T) {
	// CSI 1 ; 6 A = Ctrl+Shift+Up (mod=6 -> bits=5 -> shift|ctrl)
	p := input.NewParser()
	p.Feed([]byte("\x1b[1;6A"))
	got, ok := p.Next()
	if !ok {
		t.Fatal("Next() returned ok=false")
	}
	ke := got.(input.KeyboardEvent)
	if ke.Key != input.KeyUp {
		t.Fatalf("Key = %v, want KeyUp", ke.Key)
	}
	if !ke.Modifiers.Shift || !ke.Modifiers.Ctrl || ke.Modifiers.Alt {
		t.Errorf("Modifiers = %+v, want shift+ctrl only", ke.Modifiers)
	}
}

func TestParserSGRMouse(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want input.MouseEvent
	}{
		{
			"left press",
			[]byte("\x1b[<0;10;5M"),
			input.MouseEvent{Button: input.ButtonLeft, X: 9, Y: 4, Pressed: true},
		},
		{
			"left release",
			[]byte("\x1b[<0;10;5m"),
			input.MouseEvent{Button: input.ButtonLeft, X: 9, Y: 4, Pressed: false},
		},
		{
			"wheel up",
			[]byte("\x1b[<64;3;3M"),
			input.MouseEvent{Button: input.ButtonWheelUp, X: 2, Y: 2, Pressed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := input.NewParser()
			p.Feed(tt.in)
			got, ok := p.Next()
			if !ok {
				t.Fatalf("Next() returned ok=false for %v", tt.in)
			}
			me, isMouse := got.(input.MouseEvent)
			if !isMouse {
				t.Fatalf("Next() = %#v, want MouseEvent", got)
			}
			if me != tt.want {
				t.Errorf("Next() = %+v, want %+v", me, tt.want)
			}
		})
	}
}

func TestParserX10Mouse(t *testing.T) {
	// X10: ESC [ M <button+32> <x+32+1> <y+32+1>, left button at (2,3).
	p := input.NewParser()
	p.Feed([]byte{0x1B, '[', 'M', byte(0 + 32), byte(2 + 1 + 32), byte(3 + 1 + 32)})
	got, ok := p.Next()
	if !ok {
		t.Fatal("Next() returned ok=false")
	}
	me := got.(input.MouseEvent)
	if me.Button != input.ButtonLeft || me.X != 2 || me.Y != 3 || !me.Pressed {
		t.Errorf("Next() = %+v, want left press at (2,3)", me)
	}
}

func TestParserURxvtMouse(t *testing.T) {
	p := input.NewParser()
	p.Feed([]byte("\x1b[0;5;6M"))
	got, ok := p.Next()
	if !ok {
		t.Fatal("Next() returned ok=false")
	}
	me := got.(input.MouseEvent)
	if me.Button != input.ButtonLeft || me.X != 4 || me.Y != 5 {
		t.Errorf("Next() = %+v, want left at (4,5)", me)
	}
}

func TestParserPartialSequenceBuffered(t *testing.T) {
	p := input.NewParser()
	p.Feed([]byte{0x1B, '['})
	if _, ok := p.Next(); ok {
		t.Fatal("Next() should not return an event for a partial CSI sequence")
	}
	if !p.Pending() {
		t.Error("Pending() = false, want true while a partial sequence is buffered")
	}

	p.Feed([]byte{'A'})
	got, ok := p.Next()
	if !ok {
		t.Fatal("Next() should complete once the final byte arrives")
	}
	if ke := got.(input.KeyboardEvent); ke.Key != input.KeyUp {
		t.Errorf("Key = %v, want KeyUp", ke.Key)
	}
}

func TestParserFlushEscapeOnIdleTimeout(t *testing.T) {
	p := input.NewParser()
	p.Feed([]byte{0x1B})
	if _, ok := p.Next(); ok {
		t.Fatal("a lone ESC must not be surfaced before the idle timeout")
	}
	got, ok := p.FlushEscape()
	if !ok {
		t.Fatal("FlushEscape() should surface the pending ESC")
	}
	if ke := got.(input.KeyboardEvent); ke.Key != input.KeyEsc {
		t.Errorf("Key = %v, want KeyEsc", ke.Key)
	}
	if p.Pending() {
		t.Error("Pending() = true after FlushEscape, want false")
	}
}
