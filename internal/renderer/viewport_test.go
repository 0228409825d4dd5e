package renderer

import "testing"

func TestViewportScroll(t *testing.T) {
	tests := []struct {
		name       string
		start      Viewport
		rx, cy     int
		wantRowOff int
		wantColOff int
	}{
		{"cursor inside window", Viewport{RowOff: 0, ColOff: 0, Rows: 10, Cols: 40}, 5, 5, 0, 0},
		{"cursor above", Viewport{RowOff: 20, ColOff: 0, Rows: 10, Cols: 40}, 0, 3, 3, 0},
		{"cursor below", Viewport{RowOff: 0, ColOff: 0, Rows: 10, Cols: 40}, 0, 25, 16, 0},
		{"cursor left of window", Viewport{RowOff: 0, ColOff: 30, Rows: 10, Cols: 40}, 10, 0, 0, 10},
		{"cursor right of window", Viewport{RowOff: 0, ColOff: 0, Rows: 10, Cols: 40}, 55, 0, 0, 16},
		{"bottom edge stays", Viewport{RowOff: 0, ColOff: 0, Rows: 10, Cols: 40}, 0, 9, 0, 0},
		{"one past bottom scrolls one", Viewport{RowOff: 0, ColOff: 0, Rows: 10, Cols: 40}, 0, 10, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.start
			v.Scroll(tt.rx, tt.cy)
			if v.RowOff != tt.wantRowOff || v.ColOff != tt.wantColOff {
				t.Errorf("expected offsets (%d,%d), got (%d,%d)",
					tt.wantRowOff, tt.wantColOff, v.RowOff, v.ColOff)
			}
			if !v.Contains(tt.rx, tt.cy) {
				t.Error("cursor not visible after scroll")
			}
		})
	}
}

func TestViewportContains(t *testing.T) {
	v := Viewport{RowOff: 5, ColOff: 10, Rows: 10, Cols: 40}

	tests := []struct {
		rx, cy int
		want   bool
	}{
		{10, 5, true},
		{49, 14, true},
		{9, 5, false},
		{50, 5, false},
		{10, 4, false},
		{10, 15, false},
	}
	for _, tt := range tests {
		if got := v.Contains(tt.rx, tt.cy); got != tt.want {
			t.Errorf("Contains(%d,%d): expected %v, got %v", tt.rx, tt.cy, tt.want, got)
		}
	}
}
