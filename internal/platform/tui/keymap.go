package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelabs/slither/internal/engine"
)

// GameAction is an input-derived command for the game view.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionTurn
	GameActionPause
	GameActionRestart
	GameActionScores
	GameActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. For GameActionTurn
// the returned direction is the requested heading.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (GameAction, engine.Direction) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return GameActionQuit, 0
	case "w", "up", "k": // vim-style k for up
		return GameActionTurn, engine.DirUp
	case "s", "down", "j":
		return GameActionTurn, engine.DirDown
	case "a", "left", "h":
		return GameActionTurn, engine.DirLeft
	case "d", "right", "l":
		return GameActionTurn, engine.DirRight
	case "p", "esc":
		return GameActionPause, 0
	case "r", "enter":
		return GameActionRestart, 0
	case "t":
		return GameActionScores, 0
	}

	return GameActionNone, 0
}
