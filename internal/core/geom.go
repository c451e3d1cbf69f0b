// Package core provides the shared types for the arcade platform: vectors,
// rectangles, the screen buffer, input frames and runtime configuration.
// It has no external dependencies (especially no Bubble Tea) so game logic
// stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Bounds is a float axis-aligned box in world units.
type Bounds struct {
	Min, Max Vec2
}

// BoundsOf returns the smallest box containing all points.
func BoundsOf(points ...Vec2) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = MinF(b.Min.X, p.X)
		b.Min.Y = MinF(b.Min.Y, p.Y)
		b.Max.X = MaxF(b.Max.X, p.X)
		b.Max.Y = MaxF(b.Max.Y, p.Y)
	}
	return b
}

// Square returns the box of side 2*half centred on c.
func Square(c Vec2, half float64) Bounds {
	return Bounds{
		Min: Vec2{X: c.X - half, Y: c.Y - half},
		Max: Vec2{X: c.X + half, Y: c.Y + half},
	}
}

// Overlaps returns true if the two boxes share any area or touch.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinF returns the smaller of two floats.
func MinF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxF returns the larger of two floats.
func MaxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
