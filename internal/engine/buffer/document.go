// Package buffer implements the row-based text document: ordered rows of
// raw text with derived tab-expanded renderings and per-character highlight
// tags, plus the edit operations the editor is built on.
package buffer

import (
	"io"
	"strings"
)

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 8

// Highlighter recomputes a row's highlight tags from its rendered form.
// It is invoked every time a row's rendering changes.
type Highlighter interface {
	UpdateRow(r *Row)
}

// Document is an ordered sequence of rows. Row index equals line number.
// A cursor row index may validly equal NumRows, meaning a new empty line
// at end of file.
type Document struct {
	rows    []*Row
	dirty   int
	tabStop int
	hl      Highlighter
}

// Option configures a Document.
type Option func(*Document)

// WithTabStop sets the tab stop width.
func WithTabStop(w int) Option {
	return func(d *Document) {
		if w >= 1 {
			d.tabStop = w
		}
	}
}

// WithHighlighter sets the row highlighter.
func WithHighlighter(h Highlighter) Option {
	return func(d *Document) {
		d.hl = h
	}
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{tabStop: DefaultTabStop}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NumRows returns the row count.
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns the row at index i, or nil if out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// TabStop returns the tab stop width.
func (d *Document) TabStop() int {
	return d.tabStop
}

// Dirty returns the mutation count since the last load or MarkClean.
// Callers only test Dirty() != 0.
func (d *Document) Dirty() int {
	return d.dirty
}

// MarkClean resets the dirty counter, typically after a successful save.
func (d *Document) MarkClean() {
	d.dirty = 0
}

// SetHighlighter installs a highlighter and re-highlights every row. Raw and
// rendered content are untouched; only tags change.
func (d *Document) SetHighlighter(h Highlighter) {
	d.hl = h
	d.RehighlightAll()
}

// RehighlightAll recomputes highlight tags for every row.
func (d *Document) RehighlightAll() {
	for _, r := range d.rows {
		d.highlightRow(r)
	}
}

// Load replaces the document content with lines read from r. Each line has
// its trailing newline and carriage-return bytes stripped; this is the only
// place line-ending normalization occurs. The document is clean afterwards.
func (d *Document) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	d.rows = nil
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		d.InsertRow(len(d.rows), strings.TrimRight(line, "\r"))
	}
	d.dirty = 0
	return nil
}

// Contents serializes all rows as raw text, every row followed by a single
// newline, the last row included.
func (d *Document) Contents() string {
	var b strings.Builder
	for _, r := range d.rows {
		b.Write(r.chars)
		b.WriteByte('\n')
	}
	return b.String()
}

// InsertRow inserts a new row with the given text. The position is clamped
// to [0, NumRows].
func (d *Document) InsertRow(at int, text string) {
	if at < 0 {
		at = 0
	}
	if at > len(d.rows) {
		at = len(d.rows)
	}
	r := &Row{chars: []byte(text)}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = r
	d.updateRow(r)
	d.dirty++
}

// DeleteRow removes the row at the given index. Out-of-range indices are a
// no-op.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	d.dirty++
}

// InsertChar inserts c into the row at cy at raw column cx. Editing one past
// the last row first appends an empty row, so typing past EOF extends the
// file. cx is clamped to the row length.
func (d *Document) InsertChar(cx, cy int, c byte) {
	if cy == len(d.rows) {
		d.InsertRow(len(d.rows), "")
	}
	r := d.rows[cy]
	if cx < 0 || cx > len(r.chars) {
		cx = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[cx+1:], r.chars[cx:])
	r.chars[cx] = c
	d.updateRow(r)
	d.dirty++
}

// DeleteChar deletes the character before (cx, cy) and returns the new
// cursor position. At cx == 0 it joins the row onto the end of the previous
// row, preserving exact byte content, and the cursor relocates to the join
// point. At the document start it is a no-op.
func (d *Document) DeleteChar(cx, cy int) (int, int) {
	if cy == len(d.rows) {
		return cx, cy
	}
	if cx == 0 && cy == 0 {
		return cx, cy
	}

	r := d.rows[cy]
	if cx > 0 {
		r.chars = append(r.chars[:cx-1], r.chars[cx:]...)
		d.updateRow(r)
		d.dirty++
		return cx - 1, cy
	}

	prev := d.rows[cy-1]
	joinAt := len(prev.chars)
	prev.chars = append(prev.chars, r.chars...)
	d.updateRow(prev)
	d.DeleteRow(cy)
	d.dirty++
	return joinAt, cy - 1
}

// InsertNewline splits the row at (cx, cy) and returns the new cursor
// position: column 0 of the following row. At cx == 0 an empty row is
// inserted before the current one instead.
func (d *Document) InsertNewline(cx, cy int) (int, int) {
	if cx == 0 {
		d.InsertRow(cy, "")
		return 0, cy + 1
	}

	r := d.rows[cy]
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	tail := string(r.chars[cx:])
	d.InsertRow(cy+1, tail)
	// InsertRow may have reallocated the slice header but r still points at
	// the original row.
	r.chars = r.chars[:cx]
	d.updateRow(r)
	return 0, cy + 1
}

// CxToRx converts a raw column to its rendered column, applying the same
// tab-expansion arithmetic as the renderer.
func (d *Document) CxToRx(r *Row, cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += (d.tabStop - 1) - rx%d.tabStop
		}
		rx++
	}
	return rx
}

// RxToCx is the inverse of CxToRx: it walks raw columns accumulating
// rendered width until the width exceeds rx. An out-of-range rx maps to the
// raw row length.
func (d *Document) RxToCx(r *Row, rx int) int {
	curRx := 0
	for cx := 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += (d.tabStop - 1) - curRx%d.tabStop
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(r.chars)
}

// updateRow recomputes the rendered form and highlight tags. A tab emits one
// space then pads to the next multiple of the tab stop, so it always
// advances at least one column and at most the tab stop width. This is the
// single source of truth for rendered content.
func (d *Document) updateRow(r *Row) {
	render := make([]byte, 0, len(r.chars))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%d.tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	d.highlightRow(r)
}

func (d *Document) highlightRow(r *Row) {
	if d.hl != nil {
		d.hl.UpdateRow(r)
		return
	}
	r.hl = make([]Highlight, len(r.render))
}
