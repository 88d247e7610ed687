package core

// Action is a semantic input intent, abstracted from physical key presses.
// The platform samples intents once per tick and hands them to the game.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // A, Left - held
	ActionRotateRight        // D, Right - held
	ActionThrust             // W, Up - held; absence means thrust off
	ActionFire               // Space - held
	ActionFirePressed        // Space - this tick's press edge
	ActionStart              // Enter, Space - leave the title screen
	ActionRestart            // R, Space - restart after game over
	ActionPause              // P - toggle pause
	ActionBack               // Esc, B - return to menu
	ActionQuit               // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionThrust:      "Thrust",
	ActionFire:        "Fire",
	ActionFirePressed: "FirePressed",
	ActionStart:       "Start",
	ActionRestart:     "Restart",
	ActionPause:       "Pause",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "Unknown"
}

// InputFrame is the set of intents active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Frame builds an input frame with the given actions set.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
