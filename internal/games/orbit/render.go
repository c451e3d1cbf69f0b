package orbit

import (
	"fmt"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	BrickChar    = '█'
	FallingChar  = '▓'
	FadingChar   = '▒'
	FadedChar    = '░'
	PivotChar    = '·'
	BorderHoriz  = '─'
	hudRows      = 2
	minScreenW   = 30
	minScreenH   = 12
	fadeHalfLine = FullAlpha / 2
)

// Color returns the terminal colour for a category.
func (c Category) Color() core.Color {
	switch c {
	case Blue:
		return core.ColorBrightBlue
	case Red:
		return core.ColorBrightRed
	default:
		return core.ColorBrightGreen
	}
}

// viewport maps world units onto the play area below the HUD.
type viewport struct {
	cols, rows int
	sx, sy     float64 // World units per cell
}

func newViewport(field core.Vec2, w, h int) viewport {
	rows := h - hudRows
	return viewport{
		cols: w,
		rows: rows,
		sx:   field.X / float64(w),
		sy:   field.Y / float64(rows),
	}
}

// cell returns the screen cell containing world point p.
func (v viewport) cell(p core.Vec2) (int, int) {
	return int(p.X / v.sx), hudRows + int(p.Y/v.sy)
}

// centre returns the world point at the middle of screen cell (x, y).
func (v viewport) centre(x, y int) core.Vec2 {
	return core.V((float64(x)+0.5)*v.sx, (float64(y-hudRows)+0.5)*v.sy)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := newViewport(g.field, dst.Width(), dst.Height())

	g.renderHUD(dst)
	g.renderPivot(dst, vp)
	g.renderBricks(dst, vp)
	g.renderBall(dst, vp)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, chain and speed.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.player.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.player.Lives))

	chain := g.resolver.Chain()
	right := fmt.Sprintf("Speed %.1f", g.ball.Speed())
	if chain.Len() > 1 {
		right = fmt.Sprintf("%s x%d  %s", chain.Category(), chain.Len(), right)
	}
	if g.mode.Endless {
		right = fmt.Sprintf("L%d  %s", g.levelNumber, right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

func (g *Game) renderPivot(dst *core.Screen, vp viewport) {
	x, y := vp.cell(g.pivot)
	dst.SetColored(x, y, PivotChar, core.ColorGray)
}

// renderBricks rasterises each brick by testing the cell centres under its
// bounding box. A brick thinner than a cell still marks the cell under its
// centre.
func (g *Game) renderBricks(dst *core.Screen, vp viewport) {
	for _, b := range g.bricks {
		if b.Done() {
			continue
		}
		glyph, color := brickLook(b)

		bounds := b.Bounds()
		x0, y0 := vp.cell(bounds.Min)
		x1, y1 := vp.cell(bounds.Max)
		y0 = core.Max(y0, hudRows)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if b.Contains(vp.centre(x, y)) {
					dst.SetColored(x, y, glyph, color)
				}
			}
		}

		if cx, cy := vp.cell(b.Pos); cy >= hudRows {
			dst.SetColored(cx, cy, glyph, color)
		}
	}
}

// brickLook picks the glyph and colour for a brick's life stage.
func brickLook(b *Brick) (rune, core.Color) {
	switch {
	case b.Alive:
		return BrickChar, b.Category.Color()
	case b.Death == DeathFalling:
		return FallingChar, b.Category.Color()
	case b.Alpha > fadeHalfLine:
		return FadingChar, core.ColorGray
	default:
		return FadedChar, core.ColorGray
	}
}

func (g *Game) renderBall(dst *core.Screen, vp viewport) {
	x, y := vp.cell(g.ball.Pos)
	color := core.ColorBrightWhite
	if g.ball.AtSpeedCap {
		color = core.ColorBrightYellow
	}
	dst.SetColored(x, y, BallChar, color)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "SPACE to launch  ←/→ to orbit")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.player.Score))

	case StateCleared:
		drawCenteredBox(dst, "CLEARED!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.player.Score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
