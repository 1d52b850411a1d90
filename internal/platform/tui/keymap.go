package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report no key releases, so held state is inferred from auto-repeat.
const DefaultHoldWindow = 120 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action and whether it's a quit request. Unbound keys map to
// ActionOther so that "press any key" prompts see them.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "up", "w", " ":
		return core.ActionFire, false
	case "s":
		return core.ActionContinue, false
	case "n":
		return core.ActionSoundOn, false
	case "m":
		return core.ActionSoundOff, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionOther, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
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
	}
	return MenuActionNone
}

// KeyTracker turns discrete key presses into a held-key InputFrame.
// An action stays held for the hold window after its most recent press.
type KeyTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewKeyTracker creates a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewKeyTracker(window time.Duration) *KeyTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a press of action at now.
func (kt *KeyTracker) Press(action core.Action, now time.Time) {
	if action == core.ActionNone {
		return
	}
	kt.lastSeen[action] = now
}

// Frame returns the actions held at now and forgets expired ones.
func (kt *KeyTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for action, t := range kt.lastSeen {
		if now.Sub(t) < kt.window {
			frame.Set(action)
		} else {
			delete(kt.lastSeen, action)
		}
	}
	return frame
}

// Release forgets every held action.
func (kt *KeyTracker) Release() {
	clear(kt.lastSeen)
}
