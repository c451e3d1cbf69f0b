package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orbit-breaker/internal/core"
	"github.com/vovakirdan/orbit-breaker/internal/registry"
	"github.com/vovakirdan/orbit-breaker/internal/storage"
)

const (
	menuBanner   = "O R B I T   B R E A K E R"
	menuControls = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
)

// MenuItem is one selectable mode.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // High score, 0 when none is recorded
}

// menuItems lists every registered mode with its best score from store.
func menuItems(store *storage.Store) []MenuItem {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, g := range modes {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(g.ID); err == nil {
			items[i].Best = best
		}
	}
	return items
}

// MenuModel is the mode picker. Choosing a mode or the scoreboard ends the
// program so the caller can start the next screen.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel creates a menu listing every registered mode.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey moves the cursor, wrapping at both ends, or ends the menu.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.config.ScreenW
	lines := []string{
		"",
		titleStyle.Render(menuBanner),
		"",
		"Select a mode",
		"",
	}

	titleW := 0
	for _, item := range m.items {
		titleW = max(titleW, len(item.Title))
	}
	for i, item := range m.items {
		row := fmt.Sprintf("  %-*s", titleW, item.Title)
		if item.Best > 0 {
			row += fmt.Sprintf("  best %d", item.Best)
		}
		if i == m.cursor {
			row = titleStyle.Render(">" + row[1:])
		}
		lines = append(lines, row)
	}

	if len(m.items) > 0 && m.items[m.cursor].Description != "" {
		lines = append(lines, "", hintStyle.Render(m.items[m.cursor].Description))
	}
	lines = append(lines, "", menuControls)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, including any resize since start.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text to sit in the middle of width columns, measuring
// styled text by what is visible.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the menu program ended with.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu as its own program and reports the choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
