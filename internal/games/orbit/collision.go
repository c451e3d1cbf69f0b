package orbit

import (
	"math"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// Collision constants.
const (
	// SlopeAsymptote stands in for the slope of a vertical edge.
	SlopeAsymptote = 1e7
	// EdgeFudge is how far past an edge's endpoints a touch still counts.
	EdgeFudge = 6.0
	// verticalEps is the |dx| below which an edge is treated as vertical.
	verticalEps = 1e-9
)

// NoHit is the distance reported when a swept test finds no impact.
var NoHit = math.Inf(1)

// IsHit reports whether d is a real impact distance.
func IsHit(d float64) bool {
	return !math.IsInf(d, 1) && !math.IsNaN(d)
}

// BoundingBoxOverlap is the cheap pre-filter: a square of side 4*(r+|d|)
// around the ball against the brick's axis-aligned bounds.
func BoundingBoxOverlap(c core.Vec2, r float64, d core.Vec2, brick *Brick) bool {
	half := 2 * (r + d.Len())
	return core.Square(c, half).Overlaps(brick.Bounds())
}

// SweptCircleVsSegment returns how far along its path a circle at c with
// radius r, moving by d this tick, travels before touching the segment p1-p2.
// It returns NoHit when the circle is moving away, the touch point falls
// outside the segment by more than EdgeFudge, or the distance exceeds |d|.
func SweptCircleVsSegment(c core.Vec2, r float64, d, p1, p2 core.Vec2) float64 {
	speed := d.Len()
	edge := p2.Sub(p1)
	edgeLen := edge.Len()
	if speed == 0 || edgeLen == 0 {
		return NoHit
	}

	// Foot of the perpendicular from c onto the edge's line.
	m := SlopeAsymptote
	if dx := edge.X; math.Abs(dx) >= verticalEps {
		m = edge.Y / dx
	} else if edge.Y < 0 {
		m = -SlopeAsymptote
	}
	hx := p1.X + (c.X-p1.X+m*(c.Y-p1.Y))/(1+m*m)
	height := core.V(hx, p1.Y+m*(hx-p1.X))

	toBall := c.Sub(height)
	h := toBall.Len()
	if h < verticalEps {
		return NoHit
	}
	normal := toBall.Scale(1 / h)

	// Closing speed along the normal; zero means the path is parallel.
	vn := d.Dot(normal)
	if vn >= 0 {
		return NoHit
	}

	s := (h - r) * speed / -vn
	if s < 0 {
		s = 0
	}

	touch := c.Add(d.Scale(s / speed)).Sub(normal.Scale(r))
	u := touch.Sub(p1).Dot(edge) / edgeLen
	if u < -EdgeFudge || u > edgeLen+EdgeFudge {
		return NoHit
	}

	if s > speed {
		return NoHit
	}
	return s
}

// SweptCircleVsPoint returns how far along its path the circle travels before
// its rim touches k, solved with the law of cosines. It returns NoHit when
// the path misses k or the distance exceeds |d|.
func SweptCircleVsPoint(c core.Vec2, r float64, d, k core.Vec2) float64 {
	speed := d.Len()
	if speed == 0 {
		return NoHit
	}

	toPoint := k.Sub(c)
	dist := toPoint.Len()
	if dist == 0 {
		return NoHit
	}

	cosA := d.Dot(toPoint) / (speed * dist)
	if cosA <= 0 {
		return NoHit
	}

	disc := r*r - dist*dist*(1-cosA*cosA)
	if disc < 0 {
		return NoHit
	}

	s := dist*cosA - math.Sqrt(disc)
	if s < 0 {
		s = 0
	}
	if s > speed {
		return NoHit
	}
	return s
}

// Feature identifies which part of a brick a candidate impact is against.
type Feature int

const (
	Edge0 Feature = iota // A-B
	Edge1                // B-C
	Edge2                // C-D
	Edge3                // D-A
	Corner0
	Corner1
	Corner2
	Corner3
)

// IsCorner reports whether the feature is a corner.
func (f Feature) IsCorner() bool {
	return f >= Corner0
}

// Index returns the edge or corner number, 0 to 3.
func (f Feature) Index() int {
	if f.IsCorner() {
		return int(f - Corner0)
	}
	return int(f)
}

// String returns a short label such as "edge1" or "corner3".
func (f Feature) String() string {
	names := [...]string{"edge0", "edge1", "edge2", "edge3", "corner0", "corner1", "corner2", "corner3"}
	if f < 0 || int(f) >= len(names) {
		return "unknown"
	}
	return names[f]
}

// Candidate is one possible impact between the ball and a brick feature.
type Candidate struct {
	Brick    int // Index into the brick slice
	Feature  Feature
	Distance float64
}

// Candidates evaluates the four edges then the four corners of a brick.
// Every entry is filled; misses carry NoHit.
func Candidates(c core.Vec2, r float64, d core.Vec2, brick *Brick, index int) [8]Candidate {
	var out [8]Candidate
	corners := brick.Corners()
	for i := 0; i < 4; i++ {
		p1, p2 := brick.Edge(i)
		out[i] = Candidate{
			Brick:    index,
			Feature:  Edge0 + Feature(i),
			Distance: SweptCircleVsSegment(c, r, d, p1, p2),
		}
	}
	for i, k := range corners {
		out[4+i] = Candidate{
			Brick:    index,
			Feature:  Corner0 + Feature(i),
			Distance: SweptCircleVsPoint(c, r, d, k),
		}
	}
	return out
}
