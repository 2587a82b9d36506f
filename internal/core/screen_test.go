package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q, expected blank rows", got)
	}

	if n := NewScreen(-4, -1); n.Width() != 0 || n.Height() != 0 {
		t.Error("negative sizes should clamp to zero")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetColored(2, 1, '█', ColorBrightYellow)

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"colored", 2, 1, Cell{'█', ColorBrightYellow}},
		{"untouched", 3, 1, blankCell},
		{"left of screen", -1, 0, blankCell},
		{"below screen", 0, 4, blankCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// Writes outside are dropped
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds Set should be ignored")
	}

	s.Set(2, 1, '·')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should reset the color")
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawText(9, 0, "Gotham") // Clipped to "Got"
	s.DrawText(0, 1, "◆ x")
	s.DrawTextCentered(2, "Bat", ColorYellow)

	if got := s.Row(0); got != "         Got" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.Get(2, 1) != 'x' {
		t.Error("multi-byte runes should take one cell")
	}
	if s.Get(4, 2) != 'B' || s.GetCell(4, 2).Color != ColorYellow {
		t.Errorf("centered text misplaced: row 2 = %q", s.Row(2))
	}
	if got := s.Row(7); got != strings.Repeat(" ", 12) {
		t.Errorf("out-of-range Row = %q, expected blanks", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(s.Bounds(), '·')
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	expected := "┌────┐\n│····│\n│····│\n└────┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should use the given color")
	}

	s.Clear()
	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Error("Clear should blank every cell")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Robin")
	s.DrawText(0, 5, "lost")

	s.Resize(4, 2)
	if got := s.String(); got != "Robi\n    " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(8, 7)
	if !strings.HasPrefix(s.Row(0), "Robi") {
		t.Errorf("after grow Row(0) = %q", s.Row(0))
	}
	if strings.Contains(s.String(), "lost") {
		t.Error("rows cut by a shrink should not come back")
	}
}
