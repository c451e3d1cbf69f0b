package orbit

import (
	"math"
	"testing"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

func TestSweptCircleVsSegment(t *testing.T) {
	tests := []struct {
		name     string
		c        core.Vec2
		r        float64
		d        core.Vec2
		p1, p2   core.Vec2
		expected float64
	}{
		{
			name: "vertical edge facing the ball",
			c:    core.V(100, 100), r: 7, d: core.V(4, 0),
			p1: core.V(110, 90), p2: core.V(110, 110),
			expected: 3,
		},
		{
			name: "horizontal edge below",
			c:    core.V(100, 100), r: 5, d: core.V(0, 5),
			p1: core.V(90, 110), p2: core.V(120, 110),
			expected: 5,
		},
		{
			name: "diagonal edge",
			c:    core.V(0, 0), r: 1, d: core.V(5, 5),
			p1: core.V(10, 0), p2: core.V(0, 10),
			expected: 10/math.Sqrt2 - 1,
		},
		{
			name: "already touching and approaching",
			c:    core.V(104, 100), r: 7, d: core.V(4, 0),
			p1: core.V(110, 90), p2: core.V(110, 110),
			expected: 0,
		},
		{
			name: "edge shifted out of reach",
			c:    core.V(100, 100), r: 7, d: core.V(4, 0),
			p1: core.V(110, 200), p2: core.V(110, 220),
			expected: NoHit,
		},
		{
			name: "moving away",
			c:    core.V(100, 100), r: 7, d: core.V(-4, 0),
			p1: core.V(110, 90), p2: core.V(110, 110),
			expected: NoHit,
		},
		{
			name: "parallel path",
			c:    core.V(100, 100), r: 7, d: core.V(0, 4),
			p1: core.V(110, 90), p2: core.V(110, 110),
			expected: NoHit,
		},
		{
			name: "too far for this tick",
			c:    core.V(50, 100), r: 7, d: core.V(4, 0),
			p1: core.V(110, 90), p2: core.V(110, 110),
			expected: NoHit,
		},
		{
			name: "zero velocity",
			c:    core.V(100, 100), r: 7, d: core.Vec2{},
			p1: core.V(110, 90), p2: core.V(110, 110),
			expected: NoHit,
		},
		{
			name: "zero-length edge",
			c:    core.V(100, 100), r: 7, d: core.V(4, 0),
			p1: core.V(110, 100), p2: core.V(110, 100),
			expected: NoHit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SweptCircleVsSegment(tt.c, tt.r, tt.d, tt.p1, tt.p2)
			if !IsHit(tt.expected) {
				if IsHit(got) {
					t.Errorf("SweptCircleVsSegment() = %v, expected NoHit", got)
				}
				return
			}
			if math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("SweptCircleVsSegment() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSweptCircleVsSegmentFudge(t *testing.T) {
	c := core.V(100, 100)
	d := core.V(4, 0)

	// Touch point at y=100; the edge ends 5 short of it, within the fudge.
	if got := SweptCircleVsSegment(c, 7, d, core.V(110, 80), core.V(110, 95)); !IsHit(got) {
		t.Error("touch within EdgeFudge of the endpoint should hit")
	}
	// 7 short is outside the fudge.
	if got := SweptCircleVsSegment(c, 7, d, core.V(110, 80), core.V(110, 93)); IsHit(got) {
		t.Errorf("touch beyond EdgeFudge returned %v, expected NoHit", got)
	}
}

func TestSweptCircleVsPoint(t *testing.T) {
	tests := []struct {
		name     string
		c        core.Vec2
		r        float64
		d, k     core.Vec2
		expected float64
	}{
		{"head on", core.V(0, 0), 7, core.V(30, 0), core.V(20, 0), 13},
		{"glancing", core.V(0, 0), 7, core.V(30, 0), core.V(20, 4), 20 - math.Sqrt(33)},
		{"overlapping", core.V(0, 0), 7, core.V(30, 0), core.V(3, 0), 0},
		{"passes wide", core.V(0, 0), 7, core.V(30, 0), core.V(20, 8), NoHit},
		{"behind", core.V(0, 0), 7, core.V(30, 0), core.V(-20, 0), NoHit},
		{"too far for this tick", core.V(0, 0), 7, core.V(10, 0), core.V(20, 0), NoHit},
		{"zero velocity", core.V(0, 0), 7, core.Vec2{}, core.V(5, 0), NoHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SweptCircleVsPoint(tt.c, tt.r, tt.d, tt.k)
			if !IsHit(tt.expected) {
				if IsHit(got) {
					t.Errorf("SweptCircleVsPoint() = %v, expected NoHit", got)
				}
				return
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("SweptCircleVsPoint() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDistanceMonotonicity(t *testing.T) {
	c := core.V(100, 100)
	p1, p2 := core.V(110, 90), core.V(110, 110)
	k := core.V(120, 100)

	// Required travel: 3 to the edge, 13 to the point.
	for _, speed := range []float64{20, 13, 8, 3.1, 2.9, 1, 0.001, 0} {
		d := core.V(speed, 0)

		edge := SweptCircleVsSegment(c, 7, d, p1, p2)
		if speed > 3 && math.Abs(edge-3) > 1e-4 {
			t.Errorf("speed %v: segment distance = %v, expected 3", speed, edge)
		}
		if speed < 3 && IsHit(edge) {
			t.Errorf("speed %v: segment distance = %v, expected NoHit", speed, edge)
		}

		point := SweptCircleVsPoint(c, 7, d, k)
		if speed >= 13 && math.Abs(point-13) > 1e-9 {
			t.Errorf("speed %v: point distance = %v, expected 13", speed, point)
		}
		if speed < 13 && IsHit(point) {
			t.Errorf("speed %v: point distance = %v, expected NoHit", speed, point)
		}
	}
}

func TestBoundingBoxOverlap(t *testing.T) {
	brick := NewBrick(core.V(120, 300), core.V(120, 100), 10, 10, Green)

	if !BoundingBoxOverlap(core.V(90, 100), 7, core.V(4, 0), brick) {
		t.Error("ball 30 units away with reach 22 should overlap")
	}
	if BoundingBoxOverlap(core.V(40, 100), 7, core.V(4, 0), brick) {
		t.Error("ball 80 units away should not overlap")
	}
}

func TestCornerCandidateWins(t *testing.T) {
	// Axis-aligned brick from (110,90) to (130,110); the ball is aimed at corner A.
	brick := NewBrick(core.V(120, 300), core.V(120, 100), 10, 10, Green)
	c := core.V(90, 70)
	d := core.V(20, 20)

	cands := Candidates(c, 7, d, brick, 0)
	for _, cand := range cands[:4] {
		if IsHit(cand.Distance) {
			t.Errorf("%v = %v, expected NoHit", cand.Feature, cand.Distance)
		}
	}

	ball := NewBall(c, d, d.Len(), 7, 100, BoundarySolid)
	best, ok := NearestImpact(ball, []*Brick{brick})
	if !ok {
		t.Fatal("NearestImpact() found nothing")
	}
	if best.Feature != Corner0 {
		t.Errorf("Feature = %v, expected corner0", best.Feature)
	}
	if expected := 20*math.Sqrt2 - 7; math.Abs(best.Distance-expected) > 1e-9 {
		t.Errorf("Distance = %v, expected %v", best.Distance, expected)
	}
}

func TestFeature(t *testing.T) {
	if Edge2.IsCorner() || !Corner1.IsCorner() {
		t.Error("IsCorner() misclassified features")
	}
	if Edge3.Index() != 3 || Corner2.Index() != 2 {
		t.Errorf("Index() = %d, %d, expected 3, 2", Edge3.Index(), Corner2.Index())
	}
	if Corner3.String() != "corner3" {
		t.Errorf("String() = %q, expected corner3", Corner3.String())
	}
}
