package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roids-arcade/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals only report presses and auto-repeats, so holding is emulated.
const DefaultHoldWindow = 120 * time.Millisecond

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Thrust     key.Binding
	Fire       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Thrust, k.Fire, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Thrust, k.Fire},
		{k.Start, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "rotate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "rotate right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "thrust"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a game action.
// Quit, Back and Screenshot are handled by the model and map to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionRotateLeft
	case key.Matches(msg, k.Right):
		return core.ActionRotateRight
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// holdable actions persist for the hold window; everything else is a
// one-shot delivered on the next tick.
var holdable = map[core.Action]bool{
	core.ActionRotateLeft:  true,
	core.ActionRotateRight: true,
	core.ActionThrust:      true,
	core.ActionFire:        true,
}

// HoldTracker turns a stream of key presses into per-tick input frames.
// A fire press that does not continue an existing hold also raises
// ActionFirePressed for edge-triggered guns.
type HoldTracker struct {
	window time.Duration
	now    func() time.Time
	last   map[core.Action]time.Time
	taps   core.InputFrame
}

// NewHoldTracker creates a tracker. A zero window selects DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		now:    time.Now,
		last:   make(map[core.Action]time.Time),
		taps:   core.NewInputFrame(),
	}
}

// held reports whether a was pressed within the window before t.
func (h *HoldTracker) held(a core.Action, t time.Time) bool {
	last, ok := h.last[a]
	return ok && t.Sub(last) < h.window
}

// Press records a key press.
func (h *HoldTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	t := h.now()
	if !holdable[a] {
		h.taps.Set(a)
		return
	}
	if a == core.ActionFire && !h.held(a, t) {
		h.taps.Set(core.ActionFirePressed)
	}
	h.last[a] = t
}

// Frame returns the input for the next tick and consumes pending one-shots.
func (h *HoldTracker) Frame() core.InputFrame {
	t := h.now()
	frame := h.taps.Clone()
	for a := range holdable {
		if h.held(a, t) {
			frame.Set(a)
		}
	}
	h.taps.Clear()
	return frame
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.last)
	h.taps.Clear()
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Difficulty  key.Binding
	Select      key.Binding
	Leaderboard key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Difficulty, k.Select, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "difficulty"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
