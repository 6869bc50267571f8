package viz

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Fatal("expected dots to be set")
	}
	if c.IsSet(1, 0) {
		t.Error("unexpected dot at (1, 0)")
	}

	got := []rune(c.String())
	if got[0] != 0x2801 {
		t.Errorf("expected U+2801, got %U", got[0])
	}
	if got[1] != 0x2880 {
		t.Errorf("expected U+2880, got %U", got[1])
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	before := c.String()
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	if c.String() != before {
		t.Error("out of range dots must be ignored")
	}
}

func TestCanvasClearAndShape(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Line(0, 0, 9, 11)
	c.Clear()

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if utf8.RuneCountInString(l) != 5 {
			t.Errorf("expected 5 cells, got %d", utf8.RuneCountInString(l))
		}
		if strings.Trim(l, "⠀") != "" {
			t.Error("expected blank row after Clear")
		}
	}
}

func TestCanvasLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 0, 2, 7, 2},
		{"vertical", 3, 0, 3, 7},
		{"diagonal", 0, 0, 7, 7},
		{"reverse", 7, 5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 2)
			c.Line(tt.x0, tt.y0, tt.x1, tt.y1)
			if !c.IsSet(tt.x0, tt.y0) || !c.IsSet(tt.x1, tt.y1) {
				t.Error("line must include both endpoints")
			}
		})
	}
}
