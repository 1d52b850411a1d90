package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move ship left
	ActionRight           // D, Right arrow - move ship right
	ActionFire            // Up arrow, W, Space - fire a bolt
	ActionContinue        // S - continue after losing a life
	ActionSoundOn         // N - enable sound effects
	ActionSoundOff        // M - disable sound effects
	ActionRestart         // R - start a new session after the game is complete
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionOther           // Any other key; still counts as a held key
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
	case ActionFire:
		return "Fire"
	case ActionContinue:
		return "Continue"
	case ActionSoundOn:
		return "SoundOn"
	case ActionSoundOff:
		return "SoundOff"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick: the set of
// actions whose keys are held during the frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Count returns the number of held keys this frame.
func (f InputFrame) Count() int {
	n := 0
	for a, held := range f.Actions {
		if held && a != ActionNone {
			n++
		}
	}
	return n
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
