package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction is a semantic action derived from a key press.
// This centralizes key bindings and makes them testable.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyQuit
	KeyLeft
	KeyRight
	KeyConfirm // Enter/space - start from the menu
	KeyPause
	KeyRestart
	KeyScreenshot
)

// KeyMapper translates Bubble Tea key messages to key actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to a semantic action.
func (km *KeyMapper) Map(msg tea.KeyMsg) KeyAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyQuit
	case "left", "a", "h":
		return KeyLeft
	case "right", "d", "l":
		return KeyRight
	case "enter", " ":
		return KeyConfirm
	case "p", "esc":
		return KeyPause
	case "r":
		return KeyRestart
	case "ctrl+s":
		return KeyScreenshot
	}
	return KeyNone
}
