package orbit

import (
	"math"
	"testing"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

func newTestBall(pos, vel core.Vec2, policy BoundaryPolicy) *Ball {
	b := NewBall(pos, core.V(0, -1), 1, 5, 100, policy)
	b.Vel = vel
	return b
}

func TestLaunchDirection(t *testing.T) {
	tests := []struct {
		angle    float64
		expected core.Vec2
	}{
		{0, core.V(0, -1)},
		{90, core.V(1, 0)},
		{180, core.V(0, 1)},
		{-90, core.V(-1, 0)},
	}
	for _, tt := range tests {
		if got := LaunchDirection(tt.angle); !got.Near(tt.expected, 1e-12) {
			t.Errorf("LaunchDirection(%v) = %v, expected %v", tt.angle, got, tt.expected)
		}
	}
}

func TestNewBall(t *testing.T) {
	b := NewBall(core.V(320, 200), core.V(3, -4), 10, 7, 12, BoundarySolid)
	if !b.Vel.Near(core.V(6, -8), 1e-12) {
		t.Errorf("Vel = %v, expected (6,-8)", b.Vel)
	}
	if b.FrameRatio != 1 {
		t.Errorf("FrameRatio = %v, expected 1", b.FrameRatio)
	}

	still := NewBall(core.V(0, 0), core.Vec2{}, 2, 7, 12, BoundarySolid)
	if !still.Vel.Near(core.V(0, -2), 1e-12) {
		t.Errorf("zero launch direction gave Vel = %v, expected (0,-2)", still.Vel)
	}
}

func TestIntegrateFrameRatio(t *testing.T) {
	field := core.V(640, 400)
	b := newTestBall(core.V(100, 100), core.V(3, 4), BoundarySolid)

	b.Integrate(field)
	if b.Pos != core.V(103, 104) {
		t.Errorf("Pos = %v, expected (103,104)", b.Pos)
	}

	b.FrameRatio = 2
	b.Integrate(field)
	if b.Pos != core.V(109, 112) {
		t.Errorf("Pos with ratio 2 = %v, expected (109,112)", b.Pos)
	}
	if b.DrainEdgeBounces() != 0 {
		t.Error("free flight should not count edge bounces")
	}
}

func TestIntegrateBoundaryPolicies(t *testing.T) {
	field := core.V(200, 200)

	tests := []struct {
		name     string
		policy   BoundaryPolicy
		pos, vel core.Vec2
		bounces  int
	}{
		{"solid side wall", BoundarySolid, core.V(6, 100), core.V(-3, 0), 1},
		{"corners side wall middle", BoundaryCornersOnly, core.V(6, 100), core.V(-3, 0), 0},
		{"corners side wall near corner", BoundaryCornersOnly, core.V(6, 30), core.V(-3, 0), 1},
		{"corners top wall middle", BoundaryCornersOnly, core.V(100, 6), core.V(0, -3), 0},
		{"corners bottom wall near corner", BoundaryCornersOnly, core.V(180, 194), core.V(0, 3), 1},
		{"none side wall", BoundaryNone, core.V(194, 100), core.V(3, 0), 1},
		{"solid screen corner", BoundarySolid, core.V(6, 6), core.V(-3, -3), 2},
		{"none screen corner", BoundaryNone, core.V(6, 6), core.V(-3, -3), 1},
		{"corners screen corner", BoundaryCornersOnly, core.V(6, 6), core.V(-3, -3), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(tt.pos, tt.vel, tt.policy)
			b.Integrate(field)

			if got := b.DrainEdgeBounces(); got != tt.bounces {
				t.Errorf("DrainEdgeBounces() = %d, expected %d", got, tt.bounces)
			}
			if got := b.DrainEdgeBounces(); got != 0 {
				t.Errorf("second DrainEdgeBounces() = %d, expected 0", got)
			}

			r := b.R()
			if b.Pos.X < r || b.Pos.X > field.X-r || b.Pos.Y < r || b.Pos.Y > field.Y-r {
				t.Errorf("Pos = %v escaped the field", b.Pos)
			}
			// Every contact reflects, counted or not
			if tt.vel.X != 0 && math.Signbit(b.Vel.X) == math.Signbit(tt.vel.X) {
				t.Errorf("Vel.X = %v, expected reflection of %v", b.Vel.X, tt.vel.X)
			}
			if tt.vel.Y != 0 && math.Signbit(b.Vel.Y) == math.Signbit(tt.vel.Y) {
				t.Errorf("Vel.Y = %v, expected reflection of %v", b.Vel.Y, tt.vel.Y)
			}
		})
	}
}

func TestEdgeBounceScenario(t *testing.T) {
	b := NewBall(core.V(100, 100), core.V(1, 0), 4, 7, 100, BoundarySolid)

	b.ApplyEdgeBounce(0, core.V(110, 90), core.V(110, 110), Green)

	if !b.Vel.Near(core.V(-4.04, 0), 1e-12) {
		t.Errorf("Vel = %v, expected (-4.04,0)", b.Vel)
	}
}

func TestEdgeBounceRotatedBrick(t *testing.T) {
	// Brick left of its pivot: angle π/2, edge A-B is vertical in world space.
	brick := NewBrick(core.V(100, 100), core.V(50, 100), 10, 5, Green)
	p1, p2 := brick.Edge(0)

	b := NewBall(core.V(70, 100), core.V(-1, 0), 4, 7, 100, BoundarySolid)
	b.ApplyEdgeBounce(brick.RotationAngle(), p1, p2, brick.Category)

	if !b.Vel.Near(core.V(4.04, 0), 1e-9) {
		t.Errorf("Vel = %v, expected (4.04,0)", b.Vel)
	}
}

func TestEdgeBounceHorizontalEdge(t *testing.T) {
	b := NewBall(core.V(100, 100), core.V(0, 1), 1, 7, 100, BoundarySolid)
	b.Vel = core.V(3, 4)

	b.ApplyEdgeBounce(0, core.V(90, 110), core.V(130, 110), Blue)

	if !b.Vel.Near(core.V(3.06, -4.08), 1e-12) {
		t.Errorf("Vel = %v, expected (3.06,-4.08)", b.Vel)
	}
}

func TestCornerBounce(t *testing.T) {
	b := NewBall(core.V(0, 0), core.V(0, 1), 1, 7, 100, BoundarySolid)
	b.Vel = core.V(3, -2)

	b.ApplyCornerBounce(Red)

	if !b.Vel.Near(core.V(-3.09, 2.06), 1e-12) {
		t.Errorf("Vel = %v, expected (-3.09,2.06)", b.Vel)
	}
}

func TestEscalationCapIdempotent(t *testing.T) {
	b := NewBall(core.V(0, 0), core.V(0, 1), 1, 7, 10, BoundarySolid)
	b.Vel = core.V(8, 6)

	b.ApplyEdgeBounce(0, core.V(20, -10), core.V(20, 10), Red)
	if b.Vel != core.V(-8, 6) {
		t.Errorf("Vel = %v, expected exactly (-8,6)", b.Vel)
	}
	if !b.AtSpeedCap {
		t.Error("AtSpeedCap should be set once speed reaches the cap")
	}

	for i := 0; i < 5; i++ {
		b.ApplyCornerBounce(Red)
	}
	if b.Vel != core.V(8, -6) {
		t.Errorf("Vel after five corner bounces = %v, expected exactly (8,-6)", b.Vel)
	}
	if got := b.Speed(); got != 10 {
		t.Errorf("Speed() = %v, expected 10", got)
	}
}

func TestEscalationOvershootClamped(t *testing.T) {
	b := NewBall(core.V(0, 0), core.V(0, 1), 1, 7, 10, BoundarySolid)
	b.Vel = core.V(9.95, 0)

	b.ApplyCornerBounce(Red)
	if math.Abs(b.Speed()-10) > 1e-12 {
		t.Errorf("Speed() = %v, expected clamp to 10", b.Speed())
	}
	if !b.AtSpeedCap {
		t.Error("AtSpeedCap should latch when a bounce is clamped to the cap")
	}

	before := b.Vel
	b.ApplyCornerBounce(Green)
	if b.Vel != before.Neg() {
		t.Errorf("Vel = %v, expected %v unscaled", b.Vel, before.Neg())
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(core.V(320, 200), core.V(0, -1), 4, 7, 10, BoundaryCornersOnly)
	b.Pos = core.V(20, 30)
	b.Vel = core.V(-7, 0)
	b.AtSpeedCap = true
	b.edgeBounces = 3

	b.Reset()

	if b.Pos != core.V(320, 200) {
		t.Errorf("Pos = %v, expected spawn (320,200)", b.Pos)
	}
	if !b.Vel.Near(core.V(0, -7), 1e-12) {
		t.Errorf("Vel = %v, expected (0,-7)", b.Vel)
	}
	if !b.AtSpeedCap {
		t.Error("Reset() must keep the speed cap latch")
	}
	if b.DrainEdgeBounces() != 0 {
		t.Error("Reset() should clear pending edge bounces")
	}
}

func TestParseBoundaryPolicy(t *testing.T) {
	for _, p := range []BoundaryPolicy{BoundarySolid, BoundaryCornersOnly, BoundaryNone} {
		got, err := ParseBoundaryPolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseBoundaryPolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseBoundaryPolicy("rubber"); err == nil {
		t.Error("ParseBoundaryPolicy(rubber) should fail")
	}
}

func TestFramePacer(t *testing.T) {
	p := NewFramePacer(60)

	for i := 0; i < PacerWarmup; i++ {
		if _, updated := p.Sample(30); updated {
			t.Fatalf("Sample() updated during warm-up at sample %d", i)
		}
	}
	if p.Ratio() != 1 {
		t.Errorf("Ratio() after warm-up = %v, expected 1", p.Ratio())
	}

	for i := 0; i < PacerWindow-1; i++ {
		if _, updated := p.Sample(30); updated {
			t.Fatalf("Sample() updated before the window filled at sample %d", i)
		}
	}
	ratio, updated := p.Sample(30)
	if !updated || ratio != 2 {
		t.Errorf("Sample() = %v, %v, expected 2, true", ratio, updated)
	}

	// A window of zeros is ignored
	for i := 0; i < PacerWindow; i++ {
		ratio, updated = p.Sample(0)
	}
	if updated || ratio != 2 {
		t.Errorf("zero window gave %v, %v, expected 2, false", ratio, updated)
	}
}
