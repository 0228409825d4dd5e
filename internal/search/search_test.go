package search

import (
	"testing"

	"github.com/dshills/mite/internal/engine/buffer"
	"github.com/dshills/mite/internal/input/key"
)

func testDoc(t *testing.T, lines ...string) *buffer.Document {
	t.Helper()
	d := buffer.NewDocument()
	for i, line := range lines {
		d.InsertRow(i, line)
	}
	return d
}

func typed(r rune) key.Event    { return key.NewRuneEvent(r) }
func press(k key.Key) key.Event { return key.NewSpecialEvent(k) }

func TestFreshSearchStartsFromTop(t *testing.T) {
	doc := testDoc(t, "alpha", "beta", "alpine")
	e := New(doc)

	m, found := e.Step("alp", typed('p'))
	if !found {
		t.Fatal("expected a match")
	}
	if m.Row != 0 || m.Cx != 0 {
		t.Errorf("expected match at (0,0), got (%d,%d)", m.Cx, m.Row)
	}
}

func TestForwardStepsToNextMatch(t *testing.T) {
	doc := testDoc(t, "alpha", "beta", "alpine")
	e := New(doc)

	e.Step("alp", typed('p'))
	m, found := e.Step("alp", press(key.KeyRight))
	if !found {
		t.Fatal("expected a match")
	}
	if m.Row != 2 {
		t.Errorf("expected row 2, got %d", m.Row)
	}
}

func TestForwardWrapsAround(t *testing.T) {
	// The query only occurs on row 0; searching forward from the last match
	// must wrap at the document end and find it again.
	doc := testDoc(t, "needle", "hay", "hay")
	e := New(doc)

	e.Step("needle", typed('e'))
	m, found := e.Step("needle", press(key.KeyDown))
	if !found {
		t.Fatal("expected wrap-around match")
	}
	if m.Row != 0 {
		t.Errorf("expected row 0 via wrap, got %d", m.Row)
	}
}

func TestBackwardWrapsAround(t *testing.T) {
	doc := testDoc(t, "match", "x", "match")
	e := New(doc)

	e.Step("match", typed('h'))
	m, found := e.Step("match", press(key.KeyLeft))
	if !found {
		t.Fatal("expected a match")
	}
	if m.Row != 2 {
		t.Errorf("expected row 2 scanning backward from row 0, got %d", m.Row)
	}
}

func TestMatchCursorUsesRawIndex(t *testing.T) {
	// The match lands after a tab, so the raw index differs from the
	// rendered index.
	doc := testDoc(t, "\tneedle")
	e := New(doc)

	m, found := e.Step("needle", typed('e'))
	if !found {
		t.Fatal("expected a match")
	}
	if m.Cx != 1 {
		t.Errorf("expected raw cx 1, got %d", m.Cx)
	}
}

func TestMatchHighlightAppliedAndRestored(t *testing.T) {
	doc := testDoc(t, "ab needle cd")
	e := New(doc)

	e.Step("needle", typed('e'))
	hl := doc.Row(0).HL()
	for i := 3; i < 9; i++ {
		if hl[i] != buffer.HighlightMatch {
			t.Errorf("col %d: expected Match, got %v", i, hl[i])
		}
	}
	if hl[0] != buffer.HighlightNormal {
		t.Errorf("col 0: expected Normal, got %v", hl[0])
	}

	// Ending the session restores the snapshot.
	e.Step("needle", press(key.KeyEscape))
	for i, tag := range doc.Row(0).HL() {
		if tag != buffer.HighlightNormal {
			t.Errorf("col %d: expected restored Normal, got %v", i, tag)
		}
	}
}

func TestHighlightRestoredBetweenSteps(t *testing.T) {
	doc := testDoc(t, "needle", "needle")
	e := New(doc)

	e.Step("needle", typed('e'))
	e.Step("needle", press(key.KeyRight))

	for i, tag := range doc.Row(0).HL() {
		if tag != buffer.HighlightNormal {
			t.Errorf("row 0 col %d: expected restored Normal, got %v", i, tag)
		}
	}
	for i, tag := range doc.Row(1).HL() {
		if tag != buffer.HighlightMatch {
			t.Errorf("row 1 col %d: expected Match, got %v", i, tag)
		}
	}
}

func TestEnterResetsDirectionState(t *testing.T) {
	doc := testDoc(t, "x", "match")
	e := New(doc)

	e.Step("match", typed('h'))
	if _, found := e.Step("match", press(key.KeyEnter)); found {
		t.Error("expected no match reported on Enter")
	}

	// A new scan starts fresh from the top.
	m, found := e.Step("match", typed('h'))
	if !found || m.Row != 1 {
		t.Errorf("expected fresh search to find row 1, got %v found=%v", m, found)
	}
}

func TestNoMatchFound(t *testing.T) {
	doc := testDoc(t, "aaa", "bbb")
	e := New(doc)
	if _, found := e.Step("zzz", typed('z')); found {
		t.Error("expected no match")
	}
}

func TestEmptyQueryDoesNotMatch(t *testing.T) {
	doc := testDoc(t, "aaa")
	e := New(doc)
	if _, found := e.Step("", press(key.KeyBackspace)); found {
		t.Error("expected no match for empty query")
	}
}

func TestEmptyDocument(t *testing.T) {
	e := New(buffer.NewDocument())
	if _, found := e.Step("x", typed('x')); found {
		t.Error("expected no match in empty document")
	}
}
