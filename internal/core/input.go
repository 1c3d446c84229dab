package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow pressed or held
	ActionRight        // Right arrow pressed or held
	ActionStop         // Arrow released
)

// Control runes carried in the typed stream alongside printable input.
const (
	RuneBackspace = '\b'
	RuneEnter     = '\r'
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input received during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Typed holds text input in arrival order, including RuneBackspace and
	// RuneEnter, so answer editing replays exactly as typed.
	Typed []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends runes to the typed stream.
func (f *InputFrame) Type(runes ...rune) {
	f.Typed = append(f.Typed, runes...)
}

// Clear resets all actions and typed input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Typed = f.Typed[:0]
}
