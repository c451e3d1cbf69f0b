package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm
}

func TestSessionRouting(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewSessionModel(nil, cfg, log.New(io.Discard))

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen after tab = %v, expected scoreboard", m.screen)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen after esc = %v, expected menu", m.screen)
	}
	if m.menu.WantsScoreboard() {
		t.Error("menu was not rebuilt after the scoreboard")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen after enter = %v, expected game", m.screen)
	}
	if m.game.game == nil || m.game.game.ID() != "orbit" {
		t.Fatalf("started game = %v, expected orbit", m.game.game)
	}
	if m.View() == "" {
		t.Error("View() is empty during a game")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("ctrl+c during a game did not end the session")
	}
}

func TestSessionResizeReachesMenu(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, log.New(io.Discard))
	m = sendSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.config.ScreenW != 120 || m.menu.Config().ScreenW != 120 {
		t.Errorf("ScreenW = %d (menu %d), expected 120", m.config.ScreenW, m.menu.Config().ScreenW)
	}
}
