package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ormakov/roidfield/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionThrust, false
	case "a", "left":
		return core.ActionTurnLeft, false
	case "d", "right":
		return core.ActionTurnRight, false
	case " ":
		return core.ActionFire, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionShowScores, false
	}
	return core.ActionNone, false
}

// IsHeldAction reports whether the action is driven by holding a key
// down rather than by a single press. Terminals deliver no key release
// events, so held actions are latched from key auto-repeat.
func IsHeldAction(a core.Action) bool {
	switch a {
	case core.ActionThrust, core.ActionTurnLeft, core.ActionTurnRight:
		return true
	}
	return false
}
