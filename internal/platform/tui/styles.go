package tui

import "github.com/charmbracelet/lipgloss"

// Shared colours for the menu and scoreboard screens.
var (
	accentColor = lipgloss.Color("229")
	mutedColor  = lipgloss.Color("241")
	borderColor = lipgloss.Color("240")
	selectColor = lipgloss.Color("57")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	hintStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Background(selectColor).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true).Padding(2, 4)
)
