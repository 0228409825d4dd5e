// Package syntax implements per-row highlighting: a small declarative
// language-rule table and a single-pass classifier that tags each rendered
// character. The classifier is deliberately approximate — no real lexer, no
// nested comments, no multi-line constructs.
package syntax

import (
	"path/filepath"
	"strings"

	"github.com/dshills/mite/internal/engine/buffer"
)

// Language is an immutable highlighting rule set for one filetype.
type Language struct {
	// Filetype is the display name shown in the status bar.
	Filetype string

	// Filematch lists filename patterns. A pattern starting with '.' matches
	// as a filename suffix (extension); any other pattern matches as a
	// substring of the filename.
	Filematch []string

	// Keywords is the primary keyword class.
	Keywords []string

	// Types is the secondary keyword class, tagged distinctly.
	Types []string

	// SingleLineComment is the comment marker, empty to disable.
	SingleLineComment string

	// HighlightNumbers enables digit/decimal-run tagging.
	HighlightNumbers bool

	// HighlightStrings enables quoted-string tagging.
	HighlightStrings bool
}

// Detect selects the first language whose Filematch patterns match the
// filename, or nil when none match.
func Detect(filename string, langs []*Language) *Language {
	if filename == "" {
		return nil
	}
	base := filepath.Base(filename)
	for _, lang := range langs {
		for _, pat := range lang.Filematch {
			if strings.HasPrefix(pat, ".") {
				if strings.HasSuffix(base, pat) {
					return lang
				}
			} else if strings.Contains(base, pat) {
				return lang
			}
		}
	}
	return nil
}

// separators are the punctuation bytes that delimit keywords and numbers,
// in addition to whitespace and NUL.
const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == 0 || strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Highlighter tags rows according to one language's rules. A nil language
// leaves every character Normal.
type Highlighter struct {
	lang *Language
}

// NewHighlighter creates a highlighter for the given language (nil allowed).
func NewHighlighter(lang *Language) *Highlighter {
	return &Highlighter{lang: lang}
}

// Language returns the active language, possibly nil.
func (h *Highlighter) Language() *Language {
	return h.lang
}

// Filetype returns the active filetype name, or "no ft".
func (h *Highlighter) Filetype() string {
	if h.lang == nil {
		return "no ft"
	}
	return h.lang.Filetype
}

// UpdateRow recomputes the row's highlight tags from its rendered form.
// Pure: the same rendered text and language always produce the same tags.
func (h *Highlighter) UpdateRow(r *buffer.Row) {
	render := r.Render()
	hl := make([]buffer.Highlight, len(render))
	if h.lang == nil {
		r.SetHL(hl)
		return
	}

	scs := h.lang.SingleLineComment
	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevHL := buffer.HighlightNormal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if inString == 0 && scs != "" && strings.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				hl[j] = buffer.HighlightComment
			}
			break
		}

		if h.lang.HighlightStrings {
			if inString != 0 {
				hl[i] = buffer.HighlightString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = buffer.HighlightString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = buffer.HighlightString
				i++
				continue
			}
		}

		if h.lang.HighlightNumbers {
			if (isDigit(c) && (prevSep || prevHL == buffer.HighlightNumber)) ||
				(c == '.' && prevHL == buffer.HighlightNumber) {
				hl[i] = buffer.HighlightNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, tag := h.matchKeyword(render[i:]); n > 0 {
				for j := i; j < i+n; j++ {
					hl[j] = tag
				}
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	r.SetHL(hl)
}

// matchKeyword attempts a keyword match at the start of rest. A keyword only
// qualifies when followed by a separator or end of line.
func (h *Highlighter) matchKeyword(rest string) (int, buffer.Highlight) {
	if n := matchFrom(h.lang.Keywords, rest); n > 0 {
		return n, buffer.HighlightKeyword1
	}
	if n := matchFrom(h.lang.Types, rest); n > 0 {
		return n, buffer.HighlightKeyword2
	}
	return 0, buffer.HighlightNormal
}

func matchFrom(words []string, rest string) int {
	for _, w := range words {
		if !strings.HasPrefix(rest, w) {
			continue
		}
		if len(rest) == len(w) || isSeparator(rest[len(w)]) {
			return len(w)
		}
	}
	return 0
}
