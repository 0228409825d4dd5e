package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/mite/internal/engine/buffer"
)

// Escape sequences used by the compositor. VT100/ANSI only.
const (
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escCursorHome = "\x1b[H"
	escClearLine  = "\x1b[K"
	escInvertOn   = "\x1b[7m"
	escAttrsOff   = "\x1b[m"
	escFgDefault  = "\x1b[39m"
)

// DefaultMessageTimeout is how long a status message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// Frame is everything the compositor needs to draw one screen.
type Frame struct {
	Doc  *buffer.Document
	View Viewport

	// CursorRX and CursorY are the cursor in rendered space, absolute.
	CursorRX int
	CursorY  int

	Filename string
	Filetype string
	Dirty    bool

	Message     string
	MessageTime time.Time
}

// Compositor assembles one frame of escape-sequence-annotated output into a
// single buffer so the caller can emit it in one write, avoiding flicker.
type Compositor struct {
	// Version appears in the welcome banner on an empty document.
	Version string

	// MessageTimeout bounds status message visibility; zero means
	// DefaultMessageTimeout.
	MessageTimeout time.Duration
}

// Render builds the complete frame.
func (c *Compositor) Render(f Frame) []byte {
	var ab strings.Builder

	ab.WriteString(escHideCursor)
	ab.WriteString(escCursorHome)

	c.drawRows(&ab, f)
	c.drawStatusBar(&ab, f)
	c.drawMessageBar(&ab, f)

	fmt.Fprintf(&ab, "\x1b[%d;%dH", f.CursorY-f.View.RowOff+1, f.CursorRX-f.View.ColOff+1)
	ab.WriteString(escShowCursor)

	return []byte(ab.String())
}

func (c *Compositor) drawRows(ab *strings.Builder, f Frame) {
	for y := 0; y < f.View.Rows; y++ {
		filerow := y + f.View.RowOff
		if filerow >= f.Doc.NumRows() {
			if f.Doc.NumRows() == 0 && y == f.View.Rows/3 {
				c.drawWelcome(ab, f.View.Cols)
			} else {
				ab.WriteByte('~')
			}
		} else {
			c.drawRow(ab, f.Doc.Row(filerow), f.View)
		}
		ab.WriteString(escClearLine)
		ab.WriteString("\r\n")
	}
}

func (c *Compositor) drawWelcome(ab *strings.Builder, cols int) {
	welcome := fmt.Sprintf("mite editor -- version %s", c.Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(welcome)
}

// drawRow emits the visible slice of a row's rendered text. Color escapes
// are emitted only when the highlight tag changes from the previous
// character, never per character. Non-printable bytes render as an
// inverse-video placeholder, after which the active color is restored.
func (c *Compositor) drawRow(ab *strings.Builder, r *buffer.Row, v Viewport) {
	length := r.RenderLen() - v.ColOff
	if length <= 0 {
		return
	}
	if length > v.Cols {
		length = v.Cols
	}

	render := r.Render()[v.ColOff : v.ColOff+length]
	hl := r.HL()[v.ColOff : v.ColOff+length]

	currentColor := -1
	for j := 0; j < len(render); j++ {
		ch := render[j]
		switch {
		case ch < 0x20 || ch == 0x7f:
			sym := byte('?')
			if ch <= 26 {
				sym = '@' + ch
			}
			ab.WriteString(escInvertOn)
			ab.WriteByte(sym)
			ab.WriteString(escAttrsOff)
			if currentColor != -1 {
				fmt.Fprintf(ab, "\x1b[%dm", currentColor)
			}
		case hl[j] == buffer.HighlightNormal:
			if currentColor != -1 {
				ab.WriteString(escFgDefault)
				currentColor = -1
			}
			ab.WriteByte(ch)
		default:
			color := colorFor(hl[j])
			if color != currentColor {
				currentColor = color
				fmt.Fprintf(ab, "\x1b[%dm", color)
			}
			ab.WriteByte(ch)
		}
	}
	ab.WriteString(escFgDefault)
}

func (c *Compositor) drawStatusBar(ab *strings.Builder, f Frame) {
	ab.WriteString(escInvertOn)

	name := f.Filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if f.Dirty {
		modified = " (modified)"
	}
	status := fmt.Sprintf("%s - %d lines%s", name, f.Doc.NumRows(), modified)
	if len(status) > f.View.Cols {
		status = status[:f.View.Cols]
	}
	rstatus := fmt.Sprintf("%s | %d/%d", f.Filetype, f.CursorY+1, f.Doc.NumRows())

	ab.WriteString(status)
	for n := len(status); n < f.View.Cols; {
		if f.View.Cols-n == len(rstatus) {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
		n++
	}

	ab.WriteString(escAttrsOff)
	ab.WriteString("\r\n")
}

func (c *Compositor) drawMessageBar(ab *strings.Builder, f Frame) {
	ab.WriteString(escClearLine)

	timeout := c.MessageTimeout
	if timeout == 0 {
		timeout = DefaultMessageTimeout
	}
	msg := f.Message
	if len(msg) > f.View.Cols {
		msg = msg[:f.View.Cols]
	}
	if msg != "" && time.Since(f.MessageTime) < timeout {
		ab.WriteString(msg)
	}
}

// colorFor maps a highlight tag to an ANSI foreground color (30-37 range).
func colorFor(h buffer.Highlight) int {
	switch h {
	case buffer.HighlightComment:
		return 36
	case buffer.HighlightKeyword1:
		return 33
	case buffer.HighlightKeyword2:
		return 32
	case buffer.HighlightString:
		return 35
	case buffer.HighlightNumber:
		return 31
	case buffer.HighlightMatch:
		return 34
	default:
		return 37
	}
}
