// Package search implements incremental substring search over a document,
// with wrap-around, direction memory across prompt keystrokes, and
// revertible match highlighting.
package search

import (
	"strings"

	"github.com/dshills/mite/internal/engine/buffer"
	"github.com/dshills/mite/internal/input/key"
)

// Match locates a search hit: the row index and the raw cursor column of the
// first occurrence on that row.
type Match struct {
	Row int
	Cx  int
}

// Engine carries the state of one incremental search session: the last
// matched row, the scan direction, and a snapshot of the highlight tags it
// overrode for display.
type Engine struct {
	doc *buffer.Document

	lastMatch int
	forward   bool

	savedRow int
	savedHL  []buffer.Highlight
}

// New creates an engine over the document.
func New(doc *buffer.Document) *Engine {
	return &Engine{doc: doc, lastMatch: -1, forward: true, savedRow: -1}
}

// Step advances the search by one prompt keystroke. Enter and Escape end the
// session and reset direction state. Left/Up select backward scanning,
// Right/Down forward; any other key restarts a fresh forward search. The
// scan visits at most NumRows rows starting one step from the last match,
// wrapping at the document boundaries. On a hit the matched span is tagged
// HighlightMatch with the prior tags snapshotted; the previous snapshot, if
// any, is restored first.
func (e *Engine) Step(query string, ev key.Event) (Match, bool) {
	e.restoreHighlight()

	switch {
	case ev.Is(key.KeyEnter) || ev.Is(key.KeyEscape):
		e.lastMatch = -1
		e.forward = true
		return Match{}, false
	case ev.Is(key.KeyRight) || ev.Is(key.KeyDown):
		e.forward = true
	case ev.Is(key.KeyLeft) || ev.Is(key.KeyUp):
		e.forward = false
	default:
		e.lastMatch = -1
		e.forward = true
	}

	if query == "" {
		return Match{}, false
	}
	if e.lastMatch == -1 {
		e.forward = true
	}

	step := 1
	if !e.forward {
		step = -1
	}
	current := e.lastMatch
	for n := 0; n < e.doc.NumRows(); n++ {
		current += step
		if current == -1 {
			current = e.doc.NumRows() - 1
		} else if current == e.doc.NumRows() {
			current = 0
		}

		row := e.doc.Row(current)
		x := strings.Index(row.Render(), query)
		if x < 0 {
			continue
		}

		e.lastMatch = current
		e.snapshotHighlight(current, row)
		hl := row.HL()
		for i := x; i < x+len(query) && i < len(hl); i++ {
			hl[i] = buffer.HighlightMatch
		}
		return Match{Row: current, Cx: e.doc.RxToCx(row, x)}, true
	}
	return Match{}, false
}

func (e *Engine) snapshotHighlight(rowIdx int, row *buffer.Row) {
	e.savedRow = rowIdx
	e.savedHL = make([]buffer.Highlight, len(row.HL()))
	copy(e.savedHL, row.HL())
}

// restoreHighlight puts back the tags overridden by the previous match, if
// the row still exists and its rendering has not changed shape.
func (e *Engine) restoreHighlight() {
	if e.savedRow < 0 {
		return
	}
	if row := e.doc.Row(e.savedRow); row != nil && len(row.HL()) == len(e.savedHL) {
		copy(row.HL(), e.savedHL)
	}
	e.savedRow = -1
	e.savedHL = nil
}
