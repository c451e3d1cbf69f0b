// Package registry holds the game modes the platform can start.
// Game packages register factories from init(), so the CLI and TUI discover
// modes without importing game internals.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// Game is the contract between a game and the platform. Games hold pure
// simulation state; the platform owns input mapping, timing and rendering.
type Game interface {
	// ID returns the mode identifier, used on the command line and as the score key.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh run. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen buffer sized to the terminal.
	Render(dst *core.Screen)

	// State returns the current score and game over/paused flags.
	State() core.GameState
}

// Paced is implemented by games that scale motion by the observed frame rate.
type Paced interface {
	SampleFrameRate(fps float64)
}

// Summarizer is implemented by games that report run statistics at game over.
type Summarizer interface {
	Summary() core.RunSummary
}

// Describer is implemented by games with a one-line description for menus.
type Describer interface {
	Description() string
}

// GameInfo is the listing entry for one registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns every registered mode, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks whether a mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
