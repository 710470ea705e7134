package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionThrust            // W, Up - accelerate along the ship's heading
	ActionTurnLeft          // A, Left - rotate counterclockwise
	ActionTurnRight         // D, Right - rotate clockwise
	ActionFire              // Space - fire a shot
	ActionPause             // P, Esc - pause/unpause
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionShowScores        // Tab - toggle the scoreboard overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionShowScores:
		return "ShowScores"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation tick. It
// distinguishes actions that are currently held (thrust, turning) from
// actions that were freshly triggered this tick (fire, pause), so a key
// kept down fires exactly once but thrusts every tick.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// SetHeld marks an action as held during this tick.
func (f *InputFrame) SetHeld(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// SetPressed marks an action as freshly pressed this tick.
// A pressed action is also considered held.
func (f *InputFrame) SetPressed(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.SetHeld(a)
}

// Held returns true if the action is held during this tick.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed returns true if the action was freshly pressed this tick
// (rising edge). Holding a key does not re-trigger Pressed.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Clear resets both held and pressed sets for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}

// ClearPressed drops only the rising-edge set, keeping held actions.
func (f *InputFrame) ClearPressed() {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.held {
		clone.held[k] = v
	}
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	return clone
}
