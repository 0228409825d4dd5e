package key

import "unicode"

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// Is reports whether the event is exactly the given special key.
func (e Event) Is(k Key) bool {
	return e.Key == k
}

// IsCtrl reports whether the event is the control code for the given letter.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Rune == Ctrl(r)
}

// String returns a canonical string representation.
func (e Event) String() string {
	if e.Key != KeyRune {
		return e.Key.String()
	}
	if e.Rune < 0x20 {
		return "C-" + string('a'+e.Rune-1)
	}
	if e.Rune == ' ' {
		return "Space"
	}
	return string(e.Rune)
}
