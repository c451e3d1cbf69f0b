package orbit

// Impact describes the hit a resolver tick acted on.
type Impact struct {
	Candidate
	Category Category
	Points   int
	Bonus    int
	Chain    int
}

// NearestImpact returns the single nearest candidate over every live brick.
// Ties go to the first candidate found, in brick then feature order.
func NearestImpact(ball *Ball, bricks []*Brick) (Candidate, bool) {
	c := ball.Pos
	r := ball.R()
	d := ball.Displacement()

	best := Candidate{Brick: -1, Distance: NoHit}
	for i, brick := range bricks {
		if !brick.Alive {
			continue
		}
		if !BoundingBoxOverlap(c, r, d, brick) {
			continue
		}
		for _, cand := range Candidates(c, r, d, brick, i) {
			if cand.Distance < best.Distance {
				best = cand
			}
		}
	}
	return best, IsHit(best.Distance)
}

// Resolver applies at most one brick impact per tick.
type Resolver struct {
	scorer     Scorer
	rng        Source
	chain      Chain
	chainBonus bool
	kills      int
}

// NewResolver creates a resolver reporting to scorer. Chain bonuses are
// awarded when chainBonus is set.
func NewResolver(scorer Scorer, rng Source, chainBonus bool) *Resolver {
	return &Resolver{
		scorer:     scorer,
		rng:        rng,
		chainBonus: chainBonus,
	}
}

// Tick finds the nearest impact, bounces the ball, scores the hit and kills
// the brick. It returns false and changes nothing when there is no impact.
func (r *Resolver) Tick(ball *Ball, bricks []*Brick) (Impact, bool) {
	cand, ok := NearestImpact(ball, bricks)
	if !ok {
		return Impact{}, false
	}

	brick := bricks[cand.Brick]
	incoming := ball.Vel

	if cand.Feature.IsCorner() {
		ball.ApplyCornerBounce(brick.Category)
	} else {
		p1, p2 := brick.Edge(cand.Feature.Index())
		ball.ApplyEdgeBounce(brick.RotationAngle(), p1, p2, brick.Category)
	}

	impact := Impact{
		Candidate: cand,
		Category:  brick.Category,
		Points:    brick.Category.Points(),
	}
	impact.Bonus = r.chain.Hit(brick.Category)
	impact.Chain = r.chain.Len()

	r.scorer.AddScore(impact.Points)
	if r.chainBonus && impact.Bonus > 0 {
		r.scorer.AddScore(impact.Bonus)
	}

	brick.Kill(incoming, r.rng)
	r.kills++
	return impact, true
}

// Chain exposes the chain state for the HUD and run statistics.
func (r *Resolver) Chain() *Chain {
	return &r.chain
}

// Kills returns how many bricks this resolver has destroyed.
func (r *Resolver) Kills() int {
	return r.kills
}

