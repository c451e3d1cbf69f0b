package orbit

import "math"

// brickFields is the number of values stored per brick in Snapshot.BrickData.
const brickFields = 6

// Snapshot captures the game state in primitive fields for determinism
// checks and debugging dumps.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lives      int
	Level      int
	State      string
	ServeDelay int

	BallX, BallY   float64
	BallVX, BallVY float64
	AtSpeedCap     bool
	FrameRatio     float64

	ChainLen      int
	ChainCategory int
	BestChain     int
	Kills         int
	EdgeBounces   int

	// Each brick is X, Y, Category, Alive, Death, Alpha
	BrickCount int
	BrickData  []float64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]float64, 0, len(g.bricks)*brickFields)
	for _, b := range g.bricks {
		alive := 0.0
		if b.Alive {
			alive = 1
		}
		brickData = append(brickData,
			b.Pos.X, b.Pos.Y,
			float64(b.Category), alive,
			float64(b.Death), float64(b.Alpha),
		)
	}

	chain := g.resolver.Chain()
	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:      g.player.Score,
		Lives:      g.player.Lives,
		Level:      g.levelNumber,
		State:      g.state,
		ServeDelay: g.serveDelay,

		BallX:      g.ball.Pos.X,
		BallY:      g.ball.Pos.Y,
		BallVX:     g.ball.Vel.X,
		BallVY:     g.ball.Vel.Y,
		AtSpeedCap: g.ball.AtSpeedCap,
		FrameRatio: g.ball.FrameRatio,

		ChainLen:      chain.Len(),
		ChainCategory: int(chain.Category()),
		BestChain:     chain.Best(),
		Kills:         g.resolver.Kills(),
		EdgeBounces:   g.edgeHits,

		BrickCount: len(g.bricks),
		BrickData:  brickData,
		RNGState:   g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Score, snap.Lives, snap.Level, snap.ServeDelay,
		snap.ChainLen, snap.ChainCategory, snap.BestChain, snap.Kills,
		snap.EdgeBounces, snap.BrickCount,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.FrameRatio} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.AtSpeedCap {
		h = h*31 + 1
	}
	for _, f := range snap.BrickData {
		h = h*31 + math.Float64bits(f)
	}
	return h*31 + snap.RNGState
}
