package orbit

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// BoundaryPolicy decides which playfield-edge contacts count as edge bounces.
type BoundaryPolicy int

const (
	BoundarySolid       BoundaryPolicy = iota // Every contact counts
	BoundaryCornersOnly                       // Only contacts near the screen corners count
	BoundaryNone                              // One count per tick at most
)

// String returns the config name of the policy.
func (p BoundaryPolicy) String() string {
	switch p {
	case BoundarySolid:
		return "solid"
	case BoundaryCornersOnly:
		return "corners"
	case BoundaryNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseBoundaryPolicy maps a config name to a policy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch s {
	case "solid":
		return BoundarySolid, nil
	case "corners":
		return BoundaryCornersOnly, nil
	case "none":
		return BoundaryNone, nil
	default:
		return BoundarySolid, fmt.Errorf("orbit: unknown boundary policy %q", s)
	}
}

// axisEps is the tolerance for treating a rotated edge vector as vertical.
const axisEps = 1e-6

// Ball is the moving circle. Positions are sub-pixel world units.
type Ball struct {
	Pos        core.Vec2
	Vel        core.Vec2
	Radius     int
	SpeedCap   float64
	AtSpeedCap bool // Once set, brick hits never change the speed again
	Policy     BoundaryPolicy
	FrameRatio float64 // Multiplies velocity when integrating

	Spawn     core.Vec2 // Where Reset puts the ball
	LaunchDir core.Vec2 // Unit direction Reset aims along

	edgeBounces int
}

// NewBall creates a ball at spawn moving along launchDir at the given speed.
func NewBall(spawn, launchDir core.Vec2, speed float64, radius int, speedCap float64, policy BoundaryPolicy) *Ball {
	dir := launchDir.Unit()
	if dir == (core.Vec2{}) {
		dir = core.V(0, -1)
	}
	return &Ball{
		Pos:        spawn,
		Vel:        dir.Scale(speed),
		Radius:     radius,
		SpeedCap:   speedCap,
		Policy:     policy,
		FrameRatio: 1,
		Spawn:      spawn,
		LaunchDir:  dir,
	}
}

// LaunchDirection returns the unit vector angleDeg degrees clockwise from straight up.
func LaunchDirection(angleDeg float64) core.Vec2 {
	return core.V(0, -1).Rotate(angleDeg * math.Pi / 180)
}

// R returns the radius as a float.
func (b *Ball) R() float64 {
	return float64(b.Radius)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// Displacement is how far the ball travels this tick.
func (b *Ball) Displacement() core.Vec2 {
	return b.Vel.Scale(b.FrameRatio)
}

// Integrate advances the position by one tick and reflects off the playfield
// edges. Contacts are counted per the boundary policy.
func (b *Ball) Integrate(field core.Vec2) {
	b.Pos = b.Pos.Add(b.Displacement())

	r := b.R()
	counted := false

	if b.Pos.X < r {
		b.Pos.X = r
		b.Vel.X = math.Abs(b.Vel.X)
		b.countContact(field, true, &counted)
	} else if b.Pos.X > field.X-r {
		b.Pos.X = field.X - r
		b.Vel.X = -math.Abs(b.Vel.X)
		b.countContact(field, true, &counted)
	}

	if b.Pos.Y < r {
		b.Pos.Y = r
		b.Vel.Y = math.Abs(b.Vel.Y)
		b.countContact(field, false, &counted)
	} else if b.Pos.Y > field.Y-r {
		b.Pos.Y = field.Y - r
		b.Vel.Y = -math.Abs(b.Vel.Y)
		b.countContact(field, false, &counted)
	}
}

// countContact applies the boundary policy to one wall contact.
// sideWall is true for the left and right walls.
func (b *Ball) countContact(field core.Vec2, sideWall bool, counted *bool) {
	switch b.Policy {
	case BoundarySolid:
		b.edgeBounces++
	case BoundaryNone:
		if !*counted {
			b.edgeBounces++
			*counted = true
		}
	case BoundaryCornersOnly:
		if b.inCornerRegion(field, sideWall) {
			b.edgeBounces++
		}
	}
}

// inCornerRegion reports whether the contact point lies in the outer quarter
// of the wall it touched.
func (b *Ball) inCornerRegion(field core.Vec2, sideWall bool) bool {
	if sideWall {
		return b.Pos.Y < field.Y/4 || b.Pos.Y > field.Y*3/4
	}
	return b.Pos.X < field.X/4 || b.Pos.X > field.X*3/4
}

// DrainEdgeBounces returns the counted edge bounces and resets the counter.
func (b *Ball) DrainEdgeBounces() int {
	n := b.edgeBounces
	b.edgeBounces = 0
	return n
}

// Reset returns the ball to its spawn point aimed along the launch direction,
// keeping the current speed and the speed-cap latch.
func (b *Ball) Reset() {
	speed := b.Speed()
	b.Pos = b.Spawn
	b.Vel = b.LaunchDir.Scale(speed)
	b.edgeBounces = 0
}

// ApplyEdgeBounce reflects the velocity off a brick edge. The velocity is
// rotated into the brick frame by -theta, where the edge is axis-aligned,
// the perpendicular axis is negated, and the result rotated back.
func (b *Ball) ApplyEdgeBounce(theta float64, p1, p2 core.Vec2, cat Category) {
	local := b.Vel.Rotate(-theta)
	edge := p2.Sub(p1).Rotate(-theta)
	if math.Abs(edge.X) < axisEps*math.Max(1, edge.Len()) {
		local.X = -local.X
	} else {
		local.Y = -local.Y
	}
	b.Vel = local.Rotate(theta)
	b.escalate(cat)
}

// ApplyCornerBounce sends the ball straight back the way it came.
func (b *Ball) ApplyCornerBounce(cat Category) {
	b.Vel = b.Vel.Neg()
	b.escalate(cat)
}

// escalate speeds the ball up by the category factor until the cap is
// reached. A step that would overshoot lands on the cap and latches it.
func (b *Ball) escalate(cat Category) {
	speed := b.Speed()
	if b.AtSpeedCap || speed >= b.SpeedCap {
		b.AtSpeedCap = true
		return
	}
	b.Vel = b.Vel.Scale(cat.SpeedFactor())
	if next := b.Speed(); next > b.SpeedCap {
		b.Vel = b.Vel.Scale(b.SpeedCap / next)
		b.AtSpeedCap = true
	}
}
