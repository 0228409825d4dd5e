package app

import (
	"github.com/dshills/mite/internal/input/key"
	"github.com/dshills/mite/internal/search"
)

// promptCallback observes every keystroke of a prompt along with the input
// accumulated so far. Incremental search hangs its per-keystroke scan off
// this hook.
type promptCallback func(input string, ev key.Event)

// prompt collects a line of input on the message bar. It returns ok=false
// when the user pressed Escape. The callback, when non-nil, runs once per
// keystroke, including the final Enter or Escape.
func (e *Editor) prompt(label string, cb promptCallback) (string, bool, error) {
	var buf []byte

	for {
		e.SetStatusMessage(label, string(buf))
		if err := e.refresh(); err != nil {
			return "", false, err
		}

		ev, err := e.keys.Next()
		if err != nil {
			return "", false, err
		}

		switch {
		case ev.Is(key.KeyBackspace) || ev.Is(key.KeyDelete) || ev.IsCtrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case ev.Is(key.KeyEscape):
			e.SetStatusMessage("")
			if cb != nil {
				cb(string(buf), ev)
			}
			return "", false, nil
		case ev.Is(key.KeyEnter):
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(string(buf), ev)
				}
				return string(buf), true, nil
			}
		case ev.IsChar():
			buf = append(buf, byte(ev.Rune))
		}

		if cb != nil {
			cb(string(buf), ev)
		}
	}
}

// find runs an incremental search session. The pre-search cursor and
// viewport are restored exactly when the session is cancelled.
func (e *Editor) find() error {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.view.ColOff, e.view.RowOff

	engine := search.New(e.doc)
	query, ok, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)",
		func(input string, ev key.Event) {
			if m, found := engine.Step(input, ev); found {
				e.cy = m.Row
				e.cx = m.Cx
				// Force the next scroll to land the match at the top of
				// the window.
				e.view.RowOff = e.doc.NumRows()
			}
		})
	if err != nil {
		return err
	}

	if !ok || query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.view.ColOff, e.view.RowOff = savedColOff, savedRowOff
	}
	return nil
}
