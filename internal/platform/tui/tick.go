// Package tui provides the Bubble Tea integration for Orbit Breaker.
// It handles the terminal UI loop, input mapping, frame pacing and the
// menu, scoreboard and SSH session screens.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick loop that sent it, so a loop left over from an earlier game in the
// same program is ignored.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickGen hands out tick loop generations.
var tickGen atomic.Uint64

// nextTickGen returns a fresh generation for a new game model.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval for the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

// frameClock measures the rate ticks actually arrive at.
type frameClock struct {
	last time.Time
}

// observe records a tick and returns the instantaneous frame rate.
// The first tick, and ticks that arrive out of order, report ok=false.
func (c *frameClock) observe(t time.Time) (fps float64, ok bool) {
	prev := c.last
	c.last = t
	if prev.IsZero() {
		return 0, false
	}
	dt := t.Sub(prev)
	if dt <= 0 {
		return 0, false
	}
	return float64(time.Second) / float64(dt), true
}

// reset forgets the previous tick, used after pauses in the tick stream.
func (c *frameClock) reset() {
	c.last = time.Time{}
}
