// Package renderer maps the document and cursor onto the screen: viewport
// scrolling in rendered-column space, and frame composition into a single
// append buffer flushed in one write.
package renderer

// Viewport is the visible window over the document, in rendered space.
type Viewport struct {
	// RowOff and ColOff are the rendered-space origin of the window.
	RowOff int
	ColOff int

	// Rows and Cols are the size of the text area (bars excluded).
	Rows int
	Cols int
}

// Scroll adjusts the offsets so the rendered cursor position (rx, cy) falls
// inside the window.
func (v *Viewport) Scroll(rx, cy int) {
	if cy < v.RowOff {
		v.RowOff = cy
	}
	if cy >= v.RowOff+v.Rows {
		v.RowOff = cy - v.Rows + 1
	}
	if rx < v.ColOff {
		v.ColOff = rx
	}
	if rx >= v.ColOff+v.Cols {
		v.ColOff = rx - v.Cols + 1
	}
}

// Contains reports whether the rendered position (rx, cy) is visible.
func (v *Viewport) Contains(rx, cy int) bool {
	return cy >= v.RowOff && cy < v.RowOff+v.Rows &&
		rx >= v.ColOff && rx < v.ColOff+v.Cols
}
