package orbit

import (
	"math"
	"testing"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// stubRNG always yields n modulo the requested range.
type stubRNG struct{ n int }

func (s stubRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.n % n
}

func (s stubRNG) Float64() float64 { return 0 }

func TestRotationAngle(t *testing.T) {
	pivot := core.V(100, 100)
	tests := []struct {
		name     string
		pos      core.Vec2
		expected float64
	}{
		{"above pivot", core.V(100, 50), 0},
		{"left of pivot", core.V(50, 100), math.Pi / 2},
		{"below pivot", core.V(100, 150), math.Pi},
		{"right of pivot", core.V(150, 100), 3 * math.Pi / 2},
		{"upper right", core.V(150, 50), 2*math.Pi - math.Pi/4},
		{"on the pivot", core.V(100, 100), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrick(pivot, tt.pos, 10, 5, Green)
			if got := b.RotationAngle(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("RotationAngle() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCornersAxisAligned(t *testing.T) {
	b := NewBrick(core.V(100, 100), core.V(100, 50), 10, 5, Green)

	expected := [4]core.Vec2{
		core.V(90, 45), core.V(110, 45), core.V(110, 55), core.V(90, 55),
	}
	for i, c := range b.Corners() {
		if !c.Near(expected[i], 1e-12) {
			t.Errorf("corner %d = %v, expected %v", i, c, expected[i])
		}
	}
}

func TestCornersRotated(t *testing.T) {
	// Left of the pivot the angle is π/2, so (x, y) offsets become (-y, x).
	b := NewBrick(core.V(100, 100), core.V(50, 100), 10, 5, Green)

	expected := [4]core.Vec2{
		core.V(55, 90), core.V(55, 110), core.V(45, 110), core.V(45, 90),
	}
	for i, c := range b.Corners() {
		if !c.Near(expected[i], 1e-9) {
			t.Errorf("corner %d = %v, expected %v", i, c, expected[i])
		}
	}
}

func TestCornersFormRectangle(t *testing.T) {
	pivot := core.V(320, 200)
	for _, pos := range []core.Vec2{core.V(100, 40), core.V(500, 350), core.V(321, 10), core.V(250, 260)} {
		b := NewBrick(pivot, pos, 12, 6, Blue)
		c := b.Corners()

		if got := c[0].Dist(c[1]); math.Abs(got-24) > 1e-9 {
			t.Errorf("pos %v: |AB| = %v, expected 24", pos, got)
		}
		if got := c[1].Dist(c[2]); math.Abs(got-12) > 1e-9 {
			t.Errorf("pos %v: |BC| = %v, expected 12", pos, got)
		}
		if got := c[0].Dist(c[2]); math.Abs(got-math.Hypot(24, 12)) > 1e-9 {
			t.Errorf("pos %v: |AC| = %v, expected %v", pos, got, math.Hypot(24, 12))
		}
		if !b.Contains(pos) {
			t.Errorf("pos %v: brick does not contain its own centre", pos)
		}
	}
}

func TestOrbitRoundTrip(t *testing.T) {
	for _, step := range []float64{0.02, 0.5, math.Pi / 3, 2.9} {
		b := NewBrick(core.V(320, 200), core.V(300, 120), 12, 6, Red)
		before := b.Corners()

		b.Orbit(OrbitRight, step)
		b.Orbit(OrbitLeft, step)

		for i, c := range b.Corners() {
			if !c.Near(before[i], 1e-9) {
				t.Errorf("step %v: corner %d = %v, expected %v", step, i, c, before[i])
			}
		}
	}
}

func TestOrbitDirection(t *testing.T) {
	pivot := core.V(100, 100)
	b := NewBrick(pivot, core.V(100, 50), 10, 5, Green)

	b.Orbit(OrbitRight, math.Pi/2)
	if !b.Pos.Near(core.V(150, 100), 1e-9) {
		t.Errorf("Orbit(Right, π/2) from above = %v, expected (150,100)", b.Pos)
	}

	b.Orbit(OrbitLeft, math.Pi)
	if !b.Pos.Near(core.V(50, 100), 1e-9) {
		t.Errorf("Orbit(Left, π) = %v, expected (50,100)", b.Pos)
	}
	if d := b.Pos.Dist(pivot); math.Abs(d-50) > 1e-9 {
		t.Errorf("orbit radius = %v, expected 50", d)
	}
}

func TestKill(t *testing.T) {
	b := NewBrick(core.V(100, 100), core.V(100, 50), 10, 5, Green)

	b.Kill(core.V(0.2, -3.5), stubRNG{n: 0})
	if b.Alive {
		t.Fatal("Kill() left brick alive")
	}
	if b.Death != DeathFalling {
		t.Errorf("Death = %v, expected falling", b.Death)
	}
	if b.seedX != 1 || b.seedY != -4 {
		t.Errorf("seeds = (%d, %d), expected (1, -4)", b.seedX, b.seedY)
	}

	// A second kill is ignored
	b.Kill(core.V(9, 9), stubRNG{n: 1})
	if b.Death != DeathFalling || b.seedX != 1 {
		t.Error("Kill() on a dead brick changed its state")
	}
}

func TestDeathSeed(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{0, 1},
		{0.1, 1},
		{-0.1, -1},
		{2.0, 2},
		{2.01, 3},
		{-4.5, -5},
	}
	for _, tt := range tests {
		if got := deathSeed(tt.in); got != tt.expected {
			t.Errorf("deathSeed(%v) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestAnimateFading(t *testing.T) {
	b := NewBrick(core.V(100, 100), core.V(100, 50), 10, 5, Green)
	b.Kill(core.V(3, 4), stubRNG{n: 1})
	if b.Death != DeathFading {
		t.Fatalf("Death = %v, expected fading", b.Death)
	}

	// seeds 3+4 give a step of 10: 255 reaches zero on the 26th tick
	calls := 1
	for b.Animate(core.V(640, 400)) {
		calls++
	}
	if calls != 26 {
		t.Errorf("fade took %d ticks, expected 26", calls)
	}
	if b.Alpha != 0 || !b.Done() || b.Dying() {
		t.Errorf("after fade: alpha=%d done=%v dying=%v", b.Alpha, b.Done(), b.Dying())
	}
	if b.Animate(core.V(640, 400)) {
		t.Error("Animate() after finishing should return false")
	}
}

func TestAnimateFallingLeavesField(t *testing.T) {
	b := NewBrick(core.V(320, 200), core.V(320, 380), 12, 6, Red)
	b.Kill(core.V(1, 1), stubRNG{n: 0})

	start := b.Pos
	calls := 1
	for b.Animate(core.V(640, 400)) {
		calls++
	}
	if calls >= DeathMaxTicks {
		t.Errorf("falling brick took %d ticks to leave the field", calls)
	}
	if b.Pos.Y <= start.Y {
		t.Errorf("falling brick moved from %v to %v, expected downward", start, b.Pos)
	}
}

func TestAnimateStopsAtMaxTicks(t *testing.T) {
	b := NewBrick(core.V(320, 200), core.V(320, 100), 12, 6, Red)
	b.Kill(core.V(1, 1), stubRNG{n: 0})

	// A very tall field keeps the brick on screen for longer than the limit
	field := core.V(640, 1e6)
	calls := 1
	for b.Animate(field) {
		calls++
	}
	if calls != DeathMaxTicks {
		t.Errorf("animation ran %d ticks, expected %d", calls, DeathMaxTicks)
	}
}

func TestAliveBrickDoesNotAnimate(t *testing.T) {
	b := NewBrick(core.V(320, 200), core.V(320, 100), 12, 6, Red)
	before := b.Pos
	if b.Animate(core.V(640, 400)) {
		t.Error("Animate() on a live brick should return false")
	}
	if b.Pos != before {
		t.Error("Animate() moved a live brick")
	}
}
