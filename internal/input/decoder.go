// Package input turns the raw terminal byte stream into logical key events.
package input

import (
	"fmt"

	"github.com/dshills/mite/internal/input/key"
)

// ByteSource is a byte stream with a short read timeout. ReadByte blocks for
// at most the timeout; ok is false when no byte arrived in time. Any error is
// a real device failure, never a timeout.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder decodes terminal input into key events. A single leading escape
// byte begins a bounded lookahead; if the follow-up bytes do not arrive
// within the source's timeout, the event is a bare Escape. Unrecognized
// escape sequences also degrade to Escape.
type Decoder struct {
	src ByteSource
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next blocks until a full key event is available.
func (d *Decoder) Next() (key.Event, error) {
	var b byte
	for {
		var ok bool
		var err error
		b, ok, err = d.src.ReadByte()
		if err != nil {
			return key.Event{}, fmt.Errorf("reading key: %w", err)
		}
		if ok {
			break
		}
	}

	switch b {
	case 0x1b:
		return d.decodeEscape()
	case '\r':
		return key.NewSpecialEvent(key.KeyEnter), nil
	case 0x7f:
		return key.NewSpecialEvent(key.KeyBackspace), nil
	}
	return key.NewRuneEvent(rune(b)), nil
}

// decodeEscape reads the remainder of an escape sequence. The terminal sends
// sequence bytes back to back, so a timeout on any byte means the user
// pressed Escape itself.
func (d *Decoder) decodeEscape() (key.Event, error) {
	b1, ok, err := d.src.ReadByte()
	if err != nil {
		return key.Event{}, err
	}
	if !ok {
		return key.NewSpecialEvent(key.KeyEscape), nil
	}

	switch b1 {
	case '[':
		return d.decodeCSI()
	case 'O':
		b2, ok, err := d.src.ReadByte()
		if err != nil {
			return key.Event{}, err
		}
		if ok {
			switch b2 {
			case 'H':
				return key.NewSpecialEvent(key.KeyHome), nil
			case 'F':
				return key.NewSpecialEvent(key.KeyEnd), nil
			}
		}
	}
	return key.NewSpecialEvent(key.KeyEscape), nil
}

// decodeCSI handles the "ESC [" grammars: a single final letter, or a digit
// followed by '~'.
func (d *Decoder) decodeCSI() (key.Event, error) {
	b2, ok, err := d.src.ReadByte()
	if err != nil {
		return key.Event{}, err
	}
	if !ok {
		return key.NewSpecialEvent(key.KeyEscape), nil
	}

	if b2 >= '0' && b2 <= '9' {
		b3, ok, err := d.src.ReadByte()
		if err != nil {
			return key.Event{}, err
		}
		if ok && b3 == '~' {
			switch b2 {
			case '1', '7':
				return key.NewSpecialEvent(key.KeyHome), nil
			case '3':
				return key.NewSpecialEvent(key.KeyDelete), nil
			case '4', '8':
				return key.NewSpecialEvent(key.KeyEnd), nil
			case '5':
				return key.NewSpecialEvent(key.KeyPageUp), nil
			case '6':
				return key.NewSpecialEvent(key.KeyPageDown), nil
			}
		}
		return key.NewSpecialEvent(key.KeyEscape), nil
	}

	switch b2 {
	case 'A':
		return key.NewSpecialEvent(key.KeyUp), nil
	case 'B':
		return key.NewSpecialEvent(key.KeyDown), nil
	case 'C':
		return key.NewSpecialEvent(key.KeyRight), nil
	case 'D':
		return key.NewSpecialEvent(key.KeyLeft), nil
	case 'H':
		return key.NewSpecialEvent(key.KeyHome), nil
	case 'F':
		return key.NewSpecialEvent(key.KeyEnd), nil
	}
	return key.NewSpecialEvent(key.KeyEscape), nil
}
