// Package app wires the editor together: one EditorState owning the
// document, cursor, viewport, syntax selection, and status line, driven by a
// single-threaded read-key / mutate / render loop.
package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/mite/internal/config"
	"github.com/dshills/mite/internal/engine/buffer"
	"github.com/dshills/mite/internal/input/key"
	"github.com/dshills/mite/internal/renderer"
	"github.com/dshills/mite/internal/syntax"
)

// Terminal is the screen-side collaborator: size queries and whole-frame
// writes. The real implementation lives in internal/terminal.
type Terminal interface {
	Size() (rows, cols int, err error)
	WriteFrame(frame []byte) error
}

// KeySource delivers decoded key events, blocking until one is available.
type KeySource interface {
	Next() (key.Event, error)
}

// Options configures a new Editor.
type Options struct {
	// Terminal and Keys are required collaborators.
	Terminal Terminal
	Keys     KeySource

	// Path is the optional file to open.
	Path string

	// Config holds the editor settings; zero value means defaults.
	Config config.Config

	// Languages is the syntax rule table; nil means built-ins only.
	Languages []*syntax.Language

	// Logger receives diagnostics; nil disables logging.
	Logger *Logger

	// Version appears in the welcome banner.
	Version string
}

// Editor is the entire mutable editor state, constructed once at startup and
// owned by the run loop. Nothing here is shared across goroutines.
type Editor struct {
	cfg  config.Config
	log  *Logger
	term Terminal
	keys KeySource

	doc   *buffer.Document
	langs []*syntax.Language
	hl    *syntax.Highlighter

	view renderer.Viewport
	comp renderer.Compositor

	// cx, cy are the raw-index cursor; rx is the derived rendered column.
	cx, cy, rx int

	filename string

	statusMsg  string
	statusTime time.Time

	quitTimes int
}

// New constructs the editor, loading the file named in opts.Path when set.
func New(opts Options) (*Editor, error) {
	if opts.Terminal == nil {
		return nil, ErrNoTerminal
	}
	if opts.Keys == nil {
		return nil, ErrNoKeySource
	}

	cfg := opts.Config
	if cfg.TabStop == 0 {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	logger = logger.WithField("session", uuid.NewString())

	langs := opts.Languages
	if langs == nil {
		langs = syntax.Builtin()
	}

	e := &Editor{
		cfg:       cfg,
		log:       logger,
		term:      opts.Terminal,
		keys:      opts.Keys,
		langs:     langs,
		hl:        syntax.NewHighlighter(nil),
		quitTimes: cfg.QuitTimes,
		comp: renderer.Compositor{
			Version:        opts.Version,
			MessageTimeout: time.Duration(cfg.MessageTimeoutMS) * time.Millisecond,
		},
	}
	e.doc = buffer.NewDocument(
		buffer.WithTabStop(cfg.TabStop),
		buffer.WithHighlighter(e.hl),
	)

	if opts.Path != "" {
		if err := e.open(opts.Path); err != nil {
			return nil, err
		}
	}

	logger.Info("editor started file=%q filetype=%s", e.filename, e.hl.Filetype())
	return e, nil
}

// SetStatusMessage sets the transient message shown in the message bar.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

// Filename returns the current file name, empty for an unnamed buffer.
func (e *Editor) Filename() string {
	return e.filename
}

// Dirty reports whether the document has unsaved changes.
func (e *Editor) Dirty() bool {
	return e.doc.Dirty() != 0
}

// Cursor returns the raw-index cursor position.
func (e *Editor) Cursor() (cx, cy int) {
	return e.cx, e.cy
}

// Document exposes the document, primarily for tests.
func (e *Editor) Document() *buffer.Document {
	return e.doc
}

// selectLanguage re-runs filetype detection against the current filename and
// re-highlights every row.
func (e *Editor) selectLanguage() {
	lang := syntax.Detect(e.filename, e.langs)
	e.hl = syntax.NewHighlighter(lang)
	e.doc.SetHighlighter(e.hl)
	e.log.Debug("filetype selected file=%q filetype=%s", e.filename, e.hl.Filetype())
}
