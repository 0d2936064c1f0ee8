package core

// Action is a semantic input, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // menu navigation; remapped to jump during play
	ActionDown           // menu navigation
	ActionJump           // jump, or double jump while airborne
	ActionConfirm        // menu selection
	ActionBack           // leave a paused or finished run
	ActionRestart        // new run after game over
	ActionQuit           // exit the program or SSH session
	ActionPause          // toggle pause
	numActions
)

var actionNames = [numActions]string{
	"None", "Up", "Down", "Jump", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions received since the last display frame.
// It is a plain value: the platform fills it from key events, hands a copy
// to the game and clears it.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= numActions {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a < numActions && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < numActions; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets the frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
