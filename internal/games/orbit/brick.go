package orbit

import (
	"math"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// OrbitDirection selects which way bricks travel around the pivot.
type OrbitDirection int

const (
	OrbitLeft  OrbitDirection = iota // Counter-clockwise on screen
	OrbitRight                       // Clockwise on screen
)

// DeathAnimation is the effect a killed brick plays before it is dropped.
type DeathAnimation int

const (
	DeathNone DeathAnimation = iota
	DeathFalling
	DeathFading
)

// String returns the animation name.
func (d DeathAnimation) String() string {
	switch d {
	case DeathFalling:
		return "falling"
	case DeathFading:
		return "fading"
	default:
		return "none"
	}
}

// Death animation limits.
const (
	DeathMaxTicks = 100
	FullAlpha     = 255
	deathGravity  = 1
)

// Brick is a rectangle that orbits a fixed pivot. Its rotation is derived
// from where it sits relative to the pivot, never stored.
type Brick struct {
	Pivot    core.Vec2
	Pos      core.Vec2
	HalfW    float64
	HalfH    float64
	Category Category
	HP       int
	Alive    bool
	Death    DeathAnimation
	Alpha    int // 0..FullAlpha, only meaningful while fading

	corners    [4]core.Vec2
	seedX      int
	seedY      int
	deathTicks int
	done       bool
}

// NewBrick creates a live brick centred at pos.
func NewBrick(pivot, pos core.Vec2, halfW, halfH float64, cat Category) *Brick {
	b := &Brick{
		Pivot:    pivot,
		HalfW:    halfW,
		HalfH:    halfH,
		Category: cat,
		HP:       cat.HitPoints(),
		Alive:    true,
		Alpha:    FullAlpha,
	}
	b.SetPos(pos)
	return b
}

// RotationAngle returns the brick's rotation in [0, 2π): the angle between
// the pivot's up direction and the pivot-to-centre direction, mirrored when
// the brick sits right of the pivot.
func (b *Brick) RotationAngle() float64 {
	v := b.Pos.Sub(b.Pivot)
	l := v.Len()
	if l == 0 {
		return 0
	}
	up := core.V(0, -1)
	cos := core.ClampF(up.Dot(v)/l, -1, 1)
	angle := math.Acos(cos)
	if b.Pos.X > b.Pivot.X {
		angle = 2*math.Pi - angle
	}
	return angle
}

// SetPos moves the brick and recomputes its corners.
func (b *Brick) SetPos(p core.Vec2) {
	b.Pos = p
	b.recomputeCorners()
}

// recomputeCorners rotates the half-extent offsets by the current angle.
// Order before rotation: A=(-w,-h), B=(w,-h), C=(w,h), D=(-w,h).
func (b *Brick) recomputeCorners() {
	theta := b.RotationAngle()
	offsets := [4]core.Vec2{
		{X: -b.HalfW, Y: -b.HalfH},
		{X: b.HalfW, Y: -b.HalfH},
		{X: b.HalfW, Y: b.HalfH},
		{X: -b.HalfW, Y: b.HalfH},
	}
	for i, o := range offsets {
		b.corners[i] = o.Rotate(theta).Add(b.Pos)
	}
}

// Corners returns A, B, C, D in world space.
func (b *Brick) Corners() [4]core.Vec2 {
	return b.corners
}

// Edge returns the i-th edge as its two endpoints: A-B, B-C, C-D, D-A.
func (b *Brick) Edge(i int) (core.Vec2, core.Vec2) {
	return b.corners[i%4], b.corners[(i+1)%4]
}

// Bounds returns the axis-aligned box around the rotated corners.
func (b *Brick) Bounds() core.Bounds {
	c := b.corners
	return core.BoundsOf(c[0], c[1], c[2], c[3])
}

// Contains reports whether p lies inside the rotated rectangle.
func (b *Brick) Contains(p core.Vec2) bool {
	local := p.Sub(b.Pos).Rotate(-b.RotationAngle())
	return math.Abs(local.X) <= b.HalfW && math.Abs(local.Y) <= b.HalfH
}

// Orbit moves the brick around its pivot by step radians, keeping its distance.
func (b *Brick) Orbit(dir OrbitDirection, step float64) {
	v := b.Pos.Sub(b.Pivot)
	r := v.Len()
	phi := math.Atan2(v.Y, v.X)
	if dir == OrbitRight {
		phi += step
	} else {
		phi -= step
	}
	sin, cos := math.Sincos(phi)
	b.SetPos(b.Pivot.Add(core.V(r*cos, r*sin)))
}

// Kill marks the brick dead and picks its death animation. The seed is the
// velocity that struck it; the debris keeps moving in that direction.
// Killing a dead brick does nothing.
func (b *Brick) Kill(seed core.Vec2, rng Source) {
	if !b.Alive {
		return
	}
	b.Alive = false
	b.HP = 0
	if rng.Intn(2) == 0 {
		b.Death = DeathFalling
	} else {
		b.Death = DeathFading
	}
	b.seedX = deathSeed(seed.X)
	b.seedY = deathSeed(seed.Y)
	b.deathTicks = 0
	b.Alpha = FullAlpha
}

// deathSeed rounds away from zero and never returns zero.
func deathSeed(v float64) int {
	n := int(math.Ceil(math.Abs(v)))
	if n == 0 {
		n = 1
	}
	if v < 0 {
		return -n
	}
	return n
}

// Dying reports whether the brick is dead but still animating.
func (b *Brick) Dying() bool {
	return !b.Alive && !b.done
}

// Done reports whether the death animation has finished.
func (b *Brick) Done() bool {
	return b.done
}

// Animate advances the death animation by one tick inside a playfield of the
// given size. It returns false once the animation has finished.
func (b *Brick) Animate(field core.Vec2) bool {
	if !b.Dying() {
		return false
	}

	b.deathTicks++
	switch b.Death {
	case DeathFalling:
		b.seedY += deathGravity
		b.SetPos(b.Pos.Add(core.V(float64(b.seedX), float64(b.seedY))))
		bounds := b.Bounds()
		if bounds.Min.Y > field.Y || bounds.Max.X < 0 || bounds.Min.X > field.X || bounds.Max.Y < 0 {
			b.done = true
		}
	case DeathFading:
		b.Alpha -= b.fadeStep()
		if b.Alpha <= 0 {
			b.Alpha = 0
			b.done = true
		}
	default:
		b.done = true
	}

	if b.deathTicks >= DeathMaxTicks {
		b.done = true
	}
	return !b.done
}

// fadeStep derives the per-tick alpha loss from the kill seed, in [3, 10].
func (b *Brick) fadeStep() int {
	sum := b.seedX + b.seedY
	if sum < 0 {
		sum = -sum
	}
	return 3 + sum%8
}
