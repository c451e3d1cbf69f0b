package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbit-breaker/internal/core"
	"github.com/vovakirdan/orbit-breaker/internal/registry"
	"github.com/vovakirdan/orbit-breaker/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game mode.
// The local player and every SSH session use it.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool // Keep the configured seed across restarts
	inputFrame core.InputFrame
	hold       orbitHold
	clock      frameClock
	tickGen    uint64
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for the current game over
}

// NewGameModel creates a model for the given game. A nil store disables
// saving; a nil logger discards save errors.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is scaled to the screen, so a resize never resets the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.hold.press(action)
	case core.ActionBack:
		// Esc leaves once the run is over or paused, and pauses otherwise
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick samples the frame rate, steps the simulation and saves the run
// once it ends.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		m.hold.release()
		m.clock.reset()
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	if m.gameState.Paused || m.gameState.GameOver {
		m.clock.reset()
	} else if fps, ok := m.clock.observe(now); ok {
		if paced, isPaced := m.game.(registry.Paced); isPaced {
			paced.SampleFrameRate(fps)
		}
	}

	m.hold.apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveRun records the finished run. Games with run statistics are saved as
// runs; others only record a non-zero score.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}

	var err error
	if s, ok := m.game.(registry.Summarizer); ok {
		_, err = m.store.SaveRun(s.Summary())
	} else if m.gameState.Score > 0 {
		_, err = m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	if err != nil && m.logger != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".orbit", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// standaloneModel runs a GameModel on its own, where going back to the
// menu means leaving the program.
type standaloneModel struct {
	GameModel
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.GameModel = gm
	}
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

// Run starts the Bubble Tea program for one game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := standaloneModel{NewGameModel(game, store, cfg, logger)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
