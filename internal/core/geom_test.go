package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"right edge excluded", 6, 3, false},
		{"bottom edge excluded", 2, 8, false},
		{"left of rect", 1, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(V(3, -1), V(-2, 4), V(0, 0))
	if b.Min != V(-2, -1) || b.Max != V(3, 4) {
		t.Errorf("BoundsOf() = %+v, expected min (-2,-1) max (3,4)", b)
	}

	if empty := BoundsOf(); empty != (Bounds{}) {
		t.Errorf("BoundsOf() with no points = %+v, expected zero", empty)
	}
}

func TestBoundsOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Bounds
		expected bool
	}{
		{"overlapping", Square(V(0, 0), 5), Square(V(6, 6), 2), true},
		{"touching", Square(V(0, 0), 5), Square(V(7, 0), 2), true},
		{"apart on x", Square(V(0, 0), 5), Square(V(8, 0), 2), false},
		{"apart on y", Square(V(0, 0), 5), Square(V(0, -8), 2), false},
		{"contained", Square(V(0, 0), 10), Square(V(1, 1), 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.expected)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("Overlaps() reversed = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %d, expected 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1, 0, 3) = %d, expected 0", got)
	}
	if got := ClampF(1.5, 0, 3); got != 1.5 {
		t.Errorf("ClampF(1.5, 0, 3) = %v, expected 1.5", got)
	}
}
