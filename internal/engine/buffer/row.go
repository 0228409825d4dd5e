package buffer

// Highlight classifies one rendered character for display.
type Highlight uint8

const (
	// HighlightNormal is unclassified text.
	HighlightNormal Highlight = iota
	// HighlightComment is a single-line comment.
	HighlightComment
	// HighlightKeyword1 is a primary-class keyword.
	HighlightKeyword1
	// HighlightKeyword2 is a secondary-class keyword.
	HighlightKeyword2
	// HighlightString is a quoted string, including its quotes.
	HighlightString
	// HighlightNumber is a digit or decimal run.
	HighlightNumber
	// HighlightMatch is a search match, applied temporarily.
	HighlightMatch
)

// Row is one line of the document. It owns the raw text, the rendered
// (tab-expanded) form derived from it, and one highlight tag per rendered
// character. Rendered form and highlights are recomputed together whenever
// the raw text changes; they are never stale relative to it.
type Row struct {
	chars  []byte
	render []byte
	hl     []Highlight
}

// Raw returns the authoritative row content.
func (r *Row) Raw() string {
	return string(r.chars)
}

// Len returns the raw length in bytes.
func (r *Row) Len() int {
	return len(r.chars)
}

// Render returns the tab-expanded form.
func (r *Row) Render() string {
	return string(r.render)
}

// RenderLen returns the rendered length in bytes.
func (r *Row) RenderLen() int {
	return len(r.render)
}

// HL returns the live highlight tags, one per rendered character. Callers
// may mutate tags in place (search match marking); structural changes go
// through SetHL.
func (r *Row) HL() []Highlight {
	return r.hl
}

// SetHL replaces the highlight tags. The slice length must equal the
// rendered length; anything else is clipped or zero-padded to keep the
// row invariant intact.
func (r *Row) SetHL(hl []Highlight) {
	if len(hl) != len(r.render) {
		fixed := make([]Highlight, len(r.render))
		copy(fixed, hl)
		hl = fixed
	}
	r.hl = hl
}
