package orbit

import (
	"github.com/vovakirdan/orbit-breaker/internal/config"
	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// LayoutParams controls generated layouts.
type LayoutParams struct {
	Field       core.Vec2 // Playfield size; the pivot is its centre
	BrickW      float64
	BrickH      float64
	Margin      float64 // Minimum distance of a brick centre from every edge
	ClearRadius float64 // Cells whose centre is this close to the pivot stay empty
	Count       int
}

// LayoutFromConfig reads layout parameters from the game config.
func LayoutFromConfig(cfg config.OrbitConfig) LayoutParams {
	return LayoutParams{
		Field:       core.V(cfg.Playfield.Width, cfg.Playfield.Height),
		BrickW:      cfg.Bricks.Width,
		BrickH:      cfg.Bricks.Height,
		Margin:      cfg.Playfield.Margin,
		ClearRadius: cfg.Playfield.ClearRadius,
		Count:       cfg.Bricks.Count,
	}
}

// DefaultLayout scatters Count bricks over a grid of brick-sized cells inside
// the margin, at most one per cell, with random categories. When the grid has
// fewer free cells than Count, every free cell is used.
func DefaultLayout(p LayoutParams, rng Source) *Level {
	lvl := &Level{Name: "generated"}
	if p.BrickW <= 0 || p.BrickH <= 0 || p.Count <= 0 {
		return lvl
	}

	cols := int((p.Field.X - 2*p.Margin) / p.BrickW)
	rows := int((p.Field.Y - 2*p.Margin) / p.BrickH)
	pivot := p.Field.Scale(0.5)

	cells := make([]core.Vec2, 0, core.Max(cols*rows, 0))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			centre := core.V(
				p.Margin+p.BrickW/2+float64(col)*p.BrickW,
				p.Margin+p.BrickH/2+float64(row)*p.BrickH,
			)
			if centre.Dist(pivot) < p.ClearRadius {
				continue
			}
			cells = append(cells, centre)
		}
	}

	n := p.Count
	if n > len(cells) {
		n = len(cells)
	}

	// Partial Fisher-Yates: the first n cells end up a uniform sample.
	lvl.Bricks = make([]BrickSpec, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(cells)-i)
		cells[i], cells[j] = cells[j], cells[i]
		lvl.Bricks = append(lvl.Bricks, BrickSpec{
			Category: Category(rng.Intn(int(categoryCount))),
			X:        cells[i].X,
			Y:        cells[i].Y,
		})
	}
	return lvl
}
