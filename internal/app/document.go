package app

import (
	"fmt"
	"os"
)

// open loads the named file into the document. A file that does not exist
// yet starts an empty buffer under that name; any other read failure is
// fatal at startup.
func (e *Editor) open(path string) error {
	e.filename = path
	e.selectLanguage()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.SetStatusMessage("%s (new file)", path)
			return nil
		}
		return &OperationError{Op: "open", Target: path, Err: err}
	}
	defer f.Close()

	if err := e.doc.Load(f); err != nil {
		return &OperationError{Op: "open", Target: path, Err: err}
	}
	e.log.Info("opened file=%q rows=%d", path, e.doc.NumRows())
	return nil
}

// save writes the serialized document. An unnamed buffer prompts for a
// filename first. Save failures are recoverable: they are surfaced on the
// status bar and the in-memory buffer stays dirty and untouched.
func (e *Editor) save() error {
	if e.filename == "" {
		name, ok, err := e.prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.filename = name
		e.selectLanguage()
	}

	text := e.doc.Contents()
	if err := writeAll(e.filename, []byte(text)); err != nil {
		opErr := &OperationError{Op: "save", Target: e.filename, Err: err}
		e.log.Error("%v", opErr)
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return nil
	}

	e.doc.MarkClean()
	e.log.Info("saved file=%q bytes=%d", e.filename, len(text))
	e.SetStatusMessage("%d bytes written to disk", len(text))
	return nil
}

// writeAll reports success only when every byte reached the file.
func writeAll(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	n, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(data))
	}
	return nil
}
