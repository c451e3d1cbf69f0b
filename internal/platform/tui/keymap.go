package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// holdTicks is how long an orbit key stays held after its last key event.
// Terminals report repeats, not releases, so a held arrow key arrives as a
// stream of presses a few ticks apart.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// orbitHold keeps orbit directions active between key repeats.
type orbitHold struct {
	left  int
	right int
}

// press starts or refreshes the hold for an orbit action. Pressing one
// direction releases the other.
func (h *orbitHold) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = holdTicks
		h.left = 0
	}
}

// apply adds the held directions to a frame and counts the hold down.
func (h *orbitHold) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// release drops both directions.
func (h *orbitHold) release() {
	h.left = 0
	h.right = 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
