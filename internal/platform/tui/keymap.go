package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Run     key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "shift+left", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "shift+right", "D"),
			key.WithHelp("→/d", "right"),
		),
		Run: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "run"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "W"),
			key.WithHelp("space/↑/w", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// KeyInput is the result of mapping one key press.
type KeyInput struct {
	Action core.Action
	Run    bool // Shift-modified arrows also engage the run modifier
	Quit   bool
	Back   bool
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyInput {
	s := msg.String()

	switch {
	case key.Matches(msg, km.keys.Quit):
		return KeyInput{Action: core.ActionQuit, Quit: true}
	case key.Matches(msg, km.keys.Left):
		return KeyInput{Action: core.ActionLeft, Run: s == "shift+left" || s == "A"}
	case key.Matches(msg, km.keys.Right):
		return KeyInput{Action: core.ActionRight, Run: s == "shift+right" || s == "D"}
	case key.Matches(msg, km.keys.Run):
		return KeyInput{Action: core.ActionRun}
	case key.Matches(msg, km.keys.Jump):
		return KeyInput{Action: core.ActionJump}
	case key.Matches(msg, km.keys.Pause):
		return KeyInput{Action: core.ActionPause}
	case key.Matches(msg, km.keys.Restart):
		return KeyInput{Action: core.ActionRestart}
	case key.Matches(msg, km.keys.Back):
		return KeyInput{Action: core.ActionBack, Back: true}
	}

	return KeyInput{Action: core.ActionNone}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
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
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
