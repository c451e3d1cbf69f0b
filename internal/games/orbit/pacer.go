package orbit

// Frame pacing constants.
const (
	PacerWarmup = 120 // Samples ignored while the terminal settles
	PacerWindow = 60  // Samples averaged per ratio update
)

// FramePacer turns observed frame rates into the ratio the ball scales its
// velocity by, so speed per second holds when ticks arrive late.
type FramePacer struct {
	ideal float64
	seen  int
	sum   float64
	count int
	ratio float64
}

// NewFramePacer creates a pacer targeting idealFPS. The ratio starts at 1.
func NewFramePacer(idealFPS float64) *FramePacer {
	return &FramePacer{ideal: idealFPS, ratio: 1}
}

// Sample records one observed frame rate. When a window fills, the ratio is
// recomputed and returned with updated=true.
func (p *FramePacer) Sample(fps float64) (ratio float64, updated bool) {
	p.seen++
	if p.seen <= PacerWarmup {
		return p.ratio, false
	}

	p.sum += fps
	p.count++
	if p.count < PacerWindow {
		return p.ratio, false
	}

	avg := p.sum / float64(p.count)
	p.sum = 0
	p.count = 0
	if avg <= 0 {
		return p.ratio, false
	}
	p.ratio = p.ideal / avg
	return p.ratio, true
}

// Ratio returns the current ratio.
func (p *FramePacer) Ratio() float64 {
	return p.ratio
}
