package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4,2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2,6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale(2) = %v, expected (6,8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross() = %v, expected -10", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
}

func TestVecUnit(t *testing.T) {
	u := V(0, -9).Unit()
	if !u.Near(V(0, -1), 1e-12) {
		t.Errorf("Unit() = %v, expected (0,-1)", u)
	}
	if z := (Vec2{}).Unit(); z != (Vec2{}) {
		t.Errorf("Unit() of zero = %v, expected zero", z)
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		theta    float64
		expected Vec2
	}{
		{"quarter turn", V(1, 0), math.Pi / 2, V(0, 1)},
		{"half turn", V(1, 2), math.Pi, V(-1, -2)},
		{"negative quarter", V(0, 1), -math.Pi / 2, V(1, 0)},
		{"full turn", V(3, -4), 2 * math.Pi, V(3, -4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Rotate(tt.theta); !got.Near(tt.expected, 1e-9) {
				t.Errorf("Rotate(%v) = %v, expected %v", tt.theta, got, tt.expected)
			}
		})
	}
}
