// Package terminal owns the process boundary to the tty: raw mode
// enable/restore, timed single-byte reads, window size queries, and
// single-write frame output.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Errors returned by terminal setup.
var (
	ErrNotATerminal = errors.New("stdin is not a terminal")
	ErrSizeQuery    = errors.New("unable to determine terminal size")
)

// Terminal is the raw-mode tty. Reads time out after roughly 100ms so the
// input decoder can distinguish a bare Escape press from the start of an
// escape sequence.
type Terminal struct {
	in       *os.File
	out      *os.File
	state    *term.State
	restored bool
}

// Open puts the controlling terminal into raw mode. The caller must ensure
// Close runs on every exit path, including fatal ones, before any
// diagnostic is printed.
func Open() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}
	fd := int(t.in.Fd())

	if !term.IsTerminal(fd) {
		return nil, ErrNotATerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	t.state = state

	if err := t.setReadTimeout(fd); err != nil {
		t.Close()
		return nil, fmt.Errorf("setting read timeout: %w", err)
	}
	return t, nil
}

// setReadTimeout switches the raw tty from blocking reads to VMIN=0,
// VTIME=1: read returns after at most a tenth of a second with zero bytes
// rather than blocking for the next byte.
func (t *Terminal) setReadTimeout(fd int) error {
	tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, tio)
}

// Close restores the terminal attributes and clears the screen. It is
// idempotent.
func (t *Terminal) Close() error {
	if t.restored || t.state == nil {
		return nil
	}
	t.restored = true
	_, _ = t.out.WriteString("\x1b[2J\x1b[H")
	return term.Restore(int(t.in.Fd()), t.state)
}

// ReadByte reads one byte, waiting at most the read timeout. ok is false
// when the timeout expired with no data. Errors are device failures.
func (t *Terminal) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := t.in.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, syscall.EAGAIN) {
		return 0, false, nil
	}
	return 0, false, err
}

// WriteFrame writes one composed frame in a single write call.
func (t *Terminal) WriteFrame(frame []byte) error {
	n, err := t.out.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	return nil
}

// Size returns the terminal dimensions. When the ioctl path is unavailable
// it falls back to parking the cursor at the bottom-right corner and asking
// the terminal where it ended up.
func (t *Terminal) Size() (rows, cols int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err == nil && w > 0 && h > 0 {
		return h, w, nil
	}
	return t.cursorPositionSize()
}

// cursorPositionSize implements the escape fallback: move the cursor to the
// far corner with bounded forward/down motions, then issue a cursor
// position report (ESC [ 6n) and parse the reply.
func (t *Terminal) cursorPositionSize() (rows, cols int, err error) {
	if _, err := t.out.WriteString("\x1b[999C\x1b[999B\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var reply []byte
	for len(reply) < 32 {
		b, ok, err := t.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		if b == 'R' {
			break
		}
		reply = append(reply, b)
	}

	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, ErrSizeQuery
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, ErrSizeQuery
	}
	return rows, cols, nil
}
