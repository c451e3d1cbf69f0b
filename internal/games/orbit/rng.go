package orbit

// Source is the randomness consumed by layout generation and death animations.
// Callers inject it so outcomes are reproducible.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// SimpleRNG is a deterministic 64-bit LCG. Its whole state is one word,
// which snapshots carry verbatim.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed. A zero seed is remapped.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next advances the generator and returns the new state.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). Uses the high bits, which have the longest period.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a value in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the raw generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores a state previously returned by State.
func (r *SimpleRNG) SetState(s uint64) {
	r.state = s
}
