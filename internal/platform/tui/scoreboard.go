package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orbit-breaker/internal/registry"
	"github.com/vovakirdan/orbit-breaker/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Narrower terminals get mode tabs instead of a sidebar
	sidebarWidth       = 30
	maxScores          = 100
	maxRuns            = 50
	dateFormat         = "Jan 02 15:04"
)

// boardView selects what the table lists.
type boardView int

const (
	viewTopScores boardView = iota
	viewRecentRuns
)

// columns returns the table columns for the view. Top scores stretch the
// date column into spare width.
func (v boardView) columns(tableWidth int) []table.Column {
	if v == viewRecentRuns {
		return []table.Column{
			{Title: "Score", Width: 8},
			{Title: "Bricks", Width: 7},
			{Title: "Chain", Width: 6},
			{Title: "Speed", Width: 6},
			{Title: "Result", Width: 8},
			{Title: "Date", Width: 12},
		}
	}
	date := 18
	if tableWidth > 40 {
		date = min(tableWidth-22, 20)
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: date},
	}
}

func (v boardView) title() string {
	if v == viewRecentRuns {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Toggle:   key.NewBinding(key.WithKeys("s", "r"), key.WithHelp("s", "scores/runs")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists top scores or recent runs for one mode at a time.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	current   int
	store     *storage.Store
	view      boardView
	scores    []storage.ScoreEntry
	runs      []storage.RunRecord
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.rebuildTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// rebuildTable recreates the table for the current size and view.
func (m *ScoreboardModel) rebuildTable() {
	tableWidth := m.width - 4
	if m.wide() {
		tableWidth -= sidebarWidth + 3
	}

	t := table.New(
		table.WithColumns(m.view.columns(tableWidth)),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(selectColor).
		Bold(false)
	t.SetStyles(s)

	m.table = t
}

// load reads scores, runs and totals for the current mode. Load errors
// show as an empty board.
func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.stats = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if runs, err := m.store.RecentRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

// fillRows puts the loaded data for the current view into the table.
func (m *ScoreboardModel) fillRows() {
	var rows []table.Row
	if m.view == viewRecentRuns {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			result := "lost"
			if r.Cleared {
				result = "cleared"
			}
			rows[i] = table.Row{
				strconv.Itoa(r.Score),
				strconv.Itoa(r.BricksKilled),
				"x" + strconv.Itoa(r.BestChain),
				strconv.FormatFloat(r.PeakSpeed, 'f', 1, 64),
				result,
				r.CreatedAt.Format(dateFormat),
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format(dateFormat)}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the mode selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.rebuildTable()
			m.fillRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.current].Title
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableContent())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarises the current mode's totals.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  |  Best: %d  |  Avg: %.0f  |  Longest chain: x%d  |  Clears: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestChain, m.stats.Clears)
}

// sidebar lists every mode with the current one highlighted.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Modes\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	maxLen := sidebarWidth - 6
	for i, g := range m.modes {
		name := g.Title
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		if i == m.current {
			sb.WriteString(titleStyle.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")
	}

	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

// tabs shows the modes in one line, or just the current one when they
// do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.current {
			tabs[i] = activeStyle.Render(g.ID)
		} else {
			tabs[i] = hintStyle.Render(" " + g.ID + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return "< " + m.modes[m.current].Title + " >"
	}
	return line
}

func (m ScoreboardModel) tableContent() string {
	empty := len(m.scores) == 0
	if m.view == viewRecentRuns {
		empty = len(m.runs) == 0
	}
	if empty {
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
