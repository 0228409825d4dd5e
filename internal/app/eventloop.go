package app

import (
	"errors"
	"fmt"

	"github.com/dshills/mite/internal/renderer"
)

// Run drives the render / read-key / mutate loop until quit. The returned
// error is nil on a normal quit; anything else is fatal and the caller must
// restore the terminal before reporting it.
func (e *Editor) Run() error {
	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		if err := e.refresh(); err != nil {
			return err
		}
		ev, err := e.keys.Next()
		if err != nil {
			return err
		}
		if err := e.processKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.log.Info("editor quit")
				return nil
			}
			return err
		}
	}
}

// refresh recomputes the viewport and flushes one composed frame.
func (e *Editor) refresh() error {
	rows, cols, err := e.term.Size()
	if err != nil {
		return fmt.Errorf("querying terminal size: %w", err)
	}
	// Two lines reserved for the status and message bars.
	e.view.Rows = rows - 2
	e.view.Cols = cols

	e.scroll()

	frame := e.comp.Render(renderer.Frame{
		Doc:         e.doc,
		View:        e.view,
		CursorRX:    e.rx,
		CursorY:     e.cy,
		Filename:    e.filename,
		Filetype:    e.hl.Filetype(),
		Dirty:       e.Dirty(),
		Message:     e.statusMsg,
		MessageTime: e.statusTime,
	})
	return e.term.WriteFrame(frame)
}

// scroll derives rx from the raw cursor and clamps the viewport around it.
func (e *Editor) scroll() {
	e.rx = 0
	if row := e.doc.Row(e.cy); row != nil {
		e.rx = e.doc.CxToRx(row, e.cx)
	}
	e.view.Scroll(e.rx, e.cy)
}
