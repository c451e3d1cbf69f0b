package orbit

import (
	"math"

	"github.com/vovakirdan/orbit-breaker/internal/config"
	"github.com/vovakirdan/orbit-breaker/internal/core"
	"github.com/vovakirdan/orbit-breaker/internal/registry"
)

// Game states
const (
	StateServe    = "serve"    // Ball parked at the pivot, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateCleared  = "cleared"  // Every brick destroyed (campaign only)
)

// Mode is one registered variant of the game.
type Mode struct {
	ID          string
	Title       string
	Description string
	Policy      BoundaryPolicy
	Endless     bool
}

// Modes lists every variant registered at init.
var Modes = []Mode{
	{
		ID:          "orbit",
		Title:       "Orbit Breaker",
		Description: "Walls are safe, the screen corners are not",
		Policy:      BoundaryCornersOnly,
	},
	{
		ID:          "orbit_solid",
		Title:       "Orbit Breaker (Solid)",
		Description: "Every wall contact costs a life",
		Policy:      BoundarySolid,
	},
	{
		ID:          "orbit_open",
		Title:       "Orbit Breaker (Open)",
		Description: "Wall contacts cost at most one life per tick",
		Policy:      BoundaryNone,
	},
	{
		ID:          "orbit_endless",
		Title:       "Orbit Breaker (Endless)",
		Description: "A fresh layout after every clear",
		Policy:      BoundaryCornersOnly,
		Endless:     true,
	},
}

// configPath stores the custom config path set via CLI
var configPath string

// levelPath stores the level file set via CLI
var levelPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath sets the level file loaded for the first layout.
func SetLevelPath(path string) {
	levelPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements Orbit Breaker on top of the collision core.
type Game struct {
	mode Mode

	// Core objects
	ball     *Ball
	bricks   []*Brick
	resolver *Resolver
	player   *Player
	pacer    *FramePacer
	rng      *SimpleRNG

	// Game state
	state       string
	tickCount   int
	serveDelay  int
	levelNumber int
	levelName   string
	levelErr    error
	edgeHits    int
	peakSpeed   float64

	// World
	field core.Vec2
	pivot core.Vec2

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.OrbitConfig
	difficulty config.Ramp
}

// New creates a game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// Description returns the one-line mode summary.
func (g *Game) Description() string {
	return g.mode.Description
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// The CLI reports a rejected config; here it only falls back.
	cfg, err := config.LoadOrbit(configPath)
	if err != nil {
		cfg = config.DefaultOrbitConfig()
	}
	config.ApplyOrbitPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewRamp(cfg.Difficulty)

	policy := g.mode.Policy
	if cfg.Ball.Boundary != "" {
		if p, err := ParseBoundaryPolicy(cfg.Ball.Boundary); err == nil {
			policy = p
		}
	}

	g.field = core.V(cfg.Playfield.Width, cfg.Playfield.Height)
	g.pivot = g.field.Scale(0.5)
	g.rng = NewSimpleRNG(runtime.Seed)
	g.player = NewPlayer(cfg.Gameplay.Lives)
	g.resolver = NewResolver(g.player, g.rng, cfg.Scoring.ChainBonus)
	g.pacer = NewFramePacer(cfg.Gameplay.IdealFPS)

	g.state = StateServe
	g.tickCount = 0
	g.serveDelay = 0
	g.levelNumber = 1
	g.levelErr = nil
	g.edgeHits = 0
	g.peakSpeed = 0

	g.loadLayout()

	speed := g.difficulty.ServeSpeed(cfg.Ball.Speed, cfg.Ball.SpeedCap, 0, 0)
	g.ball = NewBall(g.pivot, LaunchDirection(cfg.Ball.LaunchAngle), speed, cfg.Ball.Radius, cfg.Ball.SpeedCap, policy)
	g.ball.FrameRatio = g.pacer.Ratio()
	g.peakSpeed = speed
}

// loadLayout builds the bricks for the current level number. The first level
// comes from the level file when one is set; a file that fails to load is
// replaced by a generated layout.
func (g *Game) loadLayout() {
	var lvl *Level
	if levelPath != "" && g.levelNumber == 1 {
		loaded, err := LoadLevel(levelPath)
		if err == nil {
			err = loaded.Fit(g.field)
		}
		if err != nil {
			g.levelErr = err
		} else {
			lvl = loaded
		}
	}
	if lvl == nil {
		lvl = DefaultLayout(LayoutFromConfig(g.cfg), g.rng)
	}

	g.levelName = lvl.Name
	g.bricks = lvl.Build(g.pivot, g.cfg.Bricks.Width/2, g.cfg.Bricks.Height/2)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateCleared) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateCleared {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.animateDebris()

	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	g.orbitBricks(in)

	if g.state == StateServe {
		if in.Has(core.ActionJump) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	g.resolver.Tick(g.ball, g.bricks)
	g.ball.Integrate(g.field)
	g.peakSpeed = math.Max(g.peakSpeed, g.ball.Speed())

	if n := g.ball.DrainEdgeBounces(); n > 0 {
		g.handleEdgeBounces(n)
		return core.StepResult{State: g.State()}
	}

	if g.LiveBricks() == 0 {
		g.handleLevelClear()
	}

	return core.StepResult{State: g.State()}
}

// orbitBricks rotates every live brick while a direction is held.
func (g *Game) orbitBricks(in core.InputFrame) {
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)
	if left == right {
		return
	}

	dir := OrbitLeft
	if right {
		dir = OrbitRight
	}
	step := g.difficulty.OrbitStep(g.cfg.Bricks.OrbitStep, g.player.Score, g.tickCount)
	for _, b := range g.bricks {
		if b.Alive {
			b.Orbit(dir, step)
		}
	}
}

// animateDebris advances death animations and drops finished bricks.
func (g *Game) animateDebris() {
	kept := g.bricks[:0]
	for _, b := range g.bricks {
		if b.Dying() {
			b.Animate(g.field)
		}
		if !b.Done() {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(g.bricks); i++ {
		g.bricks[i] = nil
	}
	g.bricks = kept
}

// handleEdgeBounces charges one life per counted edge bounce.
func (g *Game) handleEdgeBounces(n int) {
	g.edgeHits += n
	for range n {
		g.player.LoseLife()
	}
	g.resolver.Chain().Break()

	if g.player.Dead() {
		g.state = StateGameOver
		return
	}

	g.ball.Reset()
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// handleLevelClear awards the clear bonus and either ends the run or deals
// a new layout.
func (g *Game) handleLevelClear() {
	g.player.AddScore(g.cfg.Scoring.ClearBonus)

	if !g.mode.Endless {
		g.state = StateCleared
		return
	}

	g.levelNumber++
	g.loadLayout()
	g.ball.Reset()
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// SampleFrameRate feeds one observed frame rate to the pacer.
func (g *Game) SampleFrameRate(fps float64) {
	if g.pacer == nil {
		return
	}
	if ratio, updated := g.pacer.Sample(fps); updated {
		g.ball.FrameRatio = ratio
	}
}

// LiveBricks returns the number of bricks still standing.
func (g *Game) LiveBricks() int {
	n := 0
	for _, b := range g.bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Bricks returns every brick still alive or animating.
func (g *Game) Bricks() []*Brick {
	return g.bricks
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.player.Lives
}

// Phase returns the state name (serve, playing, paused, gameover, cleared).
func (g *Game) Phase() string {
	return g.state
}

// LevelError returns why the level file was rejected, if it was.
func (g *Game) LevelError() error {
	return g.levelErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.player != nil {
		score = g.player.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateGameOver || g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// Summary reports statistics for the run so far.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Mode:         g.mode.ID,
		Score:        g.player.Score,
		BricksKilled: g.resolver.Kills(),
		BestChain:    g.resolver.Chain().Best(),
		EdgeBounces:  g.edgeHits,
		PeakSpeed:    g.peakSpeed,
		Ticks:        g.tickCount,
		Cleared:      g.state == StateCleared,
	}
}

// Register the modes with the registry
func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game {
			return New(m)
		})
	}
}
