package input

import (
	"errors"
	"testing"

	"github.com/dshills/mite/internal/input/key"
)

// scriptSource replays a fixed sequence of reads. A step with ok=false
// simulates a read timeout (no byte available).
type scriptSource struct {
	steps []readStep
	pos   int
}

type readStep struct {
	b   byte
	ok  bool
	err error
}

func (s *scriptSource) ReadByte() (byte, bool, error) {
	if s.pos >= len(s.steps) {
		return 0, false, errors.New("script exhausted")
	}
	step := s.steps[s.pos]
	s.pos++
	return step.b, step.ok, step.err
}

func bytesOf(data string) []readStep {
	steps := make([]readStep, len(data))
	for i := range data {
		steps[i] = readStep{b: data[i], ok: true}
	}
	return steps
}

func timeout() readStep { return readStep{ok: false} }

func TestDecodePrintable(t *testing.T) {
	d := NewDecoder(&scriptSource{steps: bytesOf("a")})
	ev, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ev.IsRune() || ev.Rune != 'a' {
		t.Errorf("expected rune 'a', got %v", ev)
	}
}

func TestDecodeSkipsTimeouts(t *testing.T) {
	// Timeouts before a byte arrives are absorbed silently.
	d := NewDecoder(&scriptSource{steps: []readStep{timeout(), timeout(), {b: 'x', ok: true}}})
	ev, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Rune != 'x' {
		t.Errorf("expected rune 'x', got %v", ev)
	}
}

func TestDecodeNormalization(t *testing.T) {
	tests := []struct {
		name string
		data string
		want key.Key
	}{
		{"carriage return is Enter", "\r", key.KeyEnter},
		{"DEL is Backspace", "\x7f", key.KeyBackspace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(&scriptSource{steps: bytesOf(tt.data)})
			ev, err := d.Next()
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			if ev.Key != tt.want {
				t.Errorf("expected %v, got %v", tt.want, ev.Key)
			}
		})
	}
}

func TestDecodeCtrlKeysStayRunes(t *testing.T) {
	d := NewDecoder(&scriptSource{steps: bytesOf("\x11")})
	ev, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ev.IsCtrl('q') {
		t.Errorf("expected Ctrl-Q, got %v", ev)
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		data string
		want key.Key
	}{
		{"up", "\x1b[A", key.KeyUp},
		{"down", "\x1b[B", key.KeyDown},
		{"right", "\x1b[C", key.KeyRight},
		{"left", "\x1b[D", key.KeyLeft},
		{"home letter", "\x1b[H", key.KeyHome},
		{"end letter", "\x1b[F", key.KeyEnd},
		{"home tilde 1", "\x1b[1~", key.KeyHome},
		{"home tilde 7", "\x1b[7~", key.KeyHome},
		{"delete", "\x1b[3~", key.KeyDelete},
		{"end tilde 4", "\x1b[4~", key.KeyEnd},
		{"end tilde 8", "\x1b[8~", key.KeyEnd},
		{"page up", "\x1b[5~", key.KeyPageUp},
		{"page down", "\x1b[6~", key.KeyPageDown},
		{"alternate home", "\x1bOH", key.KeyHome},
		{"alternate end", "\x1bOF", key.KeyEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(&scriptSource{steps: bytesOf(tt.data)})
			ev, err := d.Next()
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			if ev.Key != tt.want {
				t.Errorf("expected %v, got %v", tt.want, ev.Key)
			}
		})
	}
}

func TestDecodeBareEscape(t *testing.T) {
	// No follow-up byte within the timeout means the user pressed Escape.
	d := NewDecoder(&scriptSource{steps: []readStep{{b: 0x1b, ok: true}, timeout()}})
	ev, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Key != key.KeyEscape {
		t.Errorf("expected Escape, got %v", ev.Key)
	}
}

func TestDecodeTruncatedSequence(t *testing.T) {
	d := NewDecoder(&scriptSource{steps: []readStep{{b: 0x1b, ok: true}, {b: '[', ok: true}, timeout()}})
	ev, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Key != key.KeyEscape {
		t.Errorf("expected Escape, got %v", ev.Key)
	}
}

func TestDecodeUnknownSequenceDegradesToEscape(t *testing.T) {
	tests := []string{"\x1b[Z", "\x1b[9~", "\x1b[2x", "\x1bOQ", "\x1bq"}
	for _, data := range tests {
		d := NewDecoder(&scriptSource{steps: bytesOf(data)})
		ev, err := d.Next()
		if err != nil {
			t.Fatalf("Next(%q): %v", data, err)
		}
		if ev.Key != key.KeyEscape {
			t.Errorf("%q: expected Escape, got %v", data, ev.Key)
		}
	}
}

func TestDecodeReadError(t *testing.T) {
	wantErr := errors.New("device gone")
	d := NewDecoder(&scriptSource{steps: []readStep{{err: wantErr}}})
	if _, err := d.Next(); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped device error, got %v", err)
	}
}
