package core

// Action is a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Orbit bricks counter-clockwise
	ActionRight          // Orbit bricks clockwise
	ActionJump           // Launch the ball
	ActionConfirm        // Confirm a menu choice
	ActionBack           // Leave the current screen
	ActionRestart        // Start a new run after game over
	ActionQuit           // Exit the program or session
	ActionPause          // Toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Jump", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one simulation tick.
// Held keys arrive as terminal key repeats, so membership is all a frame
// records. The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}
