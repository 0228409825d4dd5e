package app

import "github.com/dshills/mite/internal/input/key"

// processKey interprets one key event. It returns ErrQuit on a confirmed
// quit and propagates nothing else but fatal errors.
func (e *Editor) processKey(ev key.Event) error {
	switch {
	case ev.Is(key.KeyEnter) || ev.IsCtrl('m'):
		e.cx, e.cy = e.doc.InsertNewline(e.cx, e.cy)

	case ev.IsCtrl('q'):
		if e.Dirty() && e.quitTimes > 0 {
			e.SetStatusMessage(
				"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
				e.quitTimes)
			e.quitTimes--
			return nil
		}
		return ErrQuit

	case ev.IsCtrl('s'):
		if err := e.save(); err != nil {
			return err
		}

	case ev.IsCtrl('f'):
		if err := e.find(); err != nil {
			return err
		}

	case ev.Is(key.KeyHome):
		e.cx = 0

	case ev.Is(key.KeyEnd):
		if row := e.doc.Row(e.cy); row != nil {
			e.cx = row.Len()
		}

	case ev.Is(key.KeyBackspace) || ev.IsCtrl('h') || ev.Is(key.KeyDelete):
		// Backspace and Ctrl-H are distinct events but identical edits;
		// Delete removes forward by stepping right first.
		if ev.Is(key.KeyDelete) {
			e.moveCursor(key.KeyRight)
		}
		e.cx, e.cy = e.doc.DeleteChar(e.cx, e.cy)

	case ev.Is(key.KeyPageUp) || ev.Is(key.KeyPageDown):
		e.movePage(ev.Key)

	case ev.Is(key.KeyUp) || ev.Is(key.KeyDown) || ev.Is(key.KeyLeft) || ev.Is(key.KeyRight):
		e.moveCursor(ev.Key)

	case ev.Is(key.KeyEscape) || ev.IsCtrl('l'):
		// Ctrl-L repaints on the next refresh anyway; Escape is ignored.

	case ev.IsRune():
		e.doc.InsertChar(e.cx, e.cy, byte(ev.Rune))
		e.cx++
	}

	// Any key other than Ctrl-Q resets the quit confirmation counter.
	if !ev.IsCtrl('q') {
		e.quitTimes = e.cfg.QuitTimes
	}
	return nil
}

// moveCursor applies one arrow-key movement, then snaps the column onto the
// destination row.
func (e *Editor) moveCursor(k key.Key) {
	row := e.doc.Row(e.cy)

	switch k {
	case key.KeyLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.doc.Row(e.cy).Len()
		}
	case key.KeyRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case key.KeyUp:
		if e.cy != 0 {
			e.cy--
		}
	case key.KeyDown:
		if e.cy < e.doc.NumRows() {
			e.cy++
		}
	}

	rowLen := 0
	if row := e.doc.Row(e.cy); row != nil {
		rowLen = row.Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// movePage moves the cursor a full screen up or down.
func (e *Editor) movePage(k key.Key) {
	dir := key.KeyDown
	if k == key.KeyPageUp {
		e.cy = e.view.RowOff
		dir = key.KeyUp
	} else {
		e.cy = e.view.RowOff + e.view.Rows - 1
		if e.cy > e.doc.NumRows() {
			e.cy = e.doc.NumRows()
		}
	}
	for i := 0; i < e.view.Rows; i++ {
		e.moveCursor(dir)
	}
}
