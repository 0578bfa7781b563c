package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, keypad 4
	ActionRight        // Right arrow, D, keypad 6
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionFly          // Space, Enter - jump over traffic
	ActionPause        // P - pause/unpause
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFly:
		return "Fly"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four held directions.
func (a Action) IsDirection() bool {
	return a == ActionLeft || a == ActionRight || a == ActionUp || a == ActionDown
}

// KeyEvent is a single press or release delivered by the input collaborator.
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// InputFrame holds the key events received between two simulation ticks,
// in arrival order. Order matters: a press followed by a release of the
// same key leaves it released.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Events: make([]KeyEvent, 0, 4),
	}
}

// Set records a press of the action.
func (f *InputFrame) Set(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: true})
}

// Release records a release of the action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: false})
}

// Has returns true if the action was pressed at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && e.Pressed {
			return true
		}
	}
	return false
}

// Empty reports whether no events were recorded.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]KeyEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
