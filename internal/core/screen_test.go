package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '█', ColorBrightRed)
	c := s.GetCell(3, 2)
	if c.Rune != '█' || c.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 2) = %+v, expected red block", c)
	}

	// Out of bounds writes are dropped
	s.SetColored(-1, 0, 'A', ColorBrightBlue)
	s.SetColored(10, 0, 'A', ColorBrightBlue)
	s.SetColored(0, 5, 'A', ColorBrightBlue)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if got := s.GetCell(99, 99); got != blankCell {
		t.Errorf("GetCell(99, 99) = %+v, expected blank", got)
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#')
	s.Clear()

	if strings.ContainsRune(s.String(), '#') {
		t.Error("Clear() left content behind")
	}

	s.Set(1, 1, 'X')
	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Resize(6, 3) gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize() should discard content")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"fits", 1, "abc", " abc  "},
		{"clipped right", 4, "abc", "    ab"},
		{"clipped left", -1, "abc", "bc    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			s.DrawText(tt.x, 0, tt.text)
			if got := s.String(); got != tt.expected {
				t.Errorf("DrawText(%d, %q) = %q, expected %q", tt.x, tt.text, got, tt.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.String(); got != "   abc   " {
		t.Errorf("DrawTextCentered() = %q, expected %q", got, "   abc   ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox() =\n%s\nexpected\n%s", got, expected)
	}
}
