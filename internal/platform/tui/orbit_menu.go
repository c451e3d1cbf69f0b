package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbit-breaker/internal/core"
	"github.com/vovakirdan/orbit-breaker/internal/games/orbit"
)

// OrbitSelection holds the choices made in the options screen.
type OrbitSelection struct {
	Preset    string // Difficulty preset name, "" keeps the config's
	LevelPath string // Level file, "" for a generated layout
}

// difficultyChoice is one row of the difficulty list.
type difficultyChoice struct {
	preset string
	label  string
}

var difficultyChoices = []difficultyChoice{
	{"", "Normal (config)"},
	{"easy", "Easy - 5 lives, slow serve"},
	{"normal", "Normal - ramps from 30%"},
	{"hard", "Hard - 2 lives, fast serve"},
	{"fixed", "Fixed - no speed ramp"},
}

// OrbitOptionsModel lets users choose a difficulty preset and then a layout.
type OrbitOptionsModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	levels        []string // Level file paths; index 0 of the list is the generated layout
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     OrbitSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewOrbitOptionsModel creates the options screen. levels are the level
// files offered after the generated layout.
func NewOrbitOptionsModel(width, height int, levels []string) OrbitOptionsModel {
	return OrbitOptionsModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m OrbitOptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OrbitOptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handleDifficultyKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m OrbitOptionsModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyChoices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Preset = difficultyChoices[m.cursor].preset
		if len(m.levels) == 0 {
			m.choosing = false
			return m, tea.Quit
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m OrbitOptionsModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels) {
			m.levelCursor++
		}
	case MenuActionSelect:
		if m.levelCursor > 0 {
			m.selection.LevelPath = m.levels[m.levelCursor-1]
		}
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the current stage.
func (m OrbitOptionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(centerText("SELECT LAYOUT", m.width))
		b.WriteString("\n\n")
		b.WriteString(m.row(0, m.levelCursor, "Generated (random)"))
		for i, path := range m.levels {
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			b.WriteString(m.row(i+1, m.levelCursor, fmt.Sprintf("%2d. %s", i+1, name)))
		}
	} else {
		b.WriteString(centerText("O R B I T   B R E A K E R", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		for i, c := range difficultyChoices {
			b.WriteString(m.row(i, m.cursor, c.label))
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func (m OrbitOptionsModel) row(i, cursor int, label string) string {
	prefix := "  "
	if i == cursor {
		prefix = "> "
	}
	return centerText(prefix+label, m.width) + "\n"
}

// Selected returns the selection, or nil if still choosing.
func (m OrbitOptionsModel) Selected() *OrbitSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m OrbitOptionsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back on the first stage.
func (m OrbitOptionsModel) WantsBack() bool {
	return m.back
}

// RunOrbitOptions shows the options screen for the level files found in
// the user's level directory. It returns nil when the user backs out or quits.
func RunOrbitOptions(cfg core.RuntimeConfig) (*OrbitSelection, error) {
	levels, err := orbit.FindLevels(orbit.UserLevelDir())
	if err != nil {
		levels = nil
	}

	p := tea.NewProgram(
		NewOrbitOptionsModel(cfg.ScreenW, cfg.ScreenH, levels),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(OrbitOptionsModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
