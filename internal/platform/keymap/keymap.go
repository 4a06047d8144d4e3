// Package keymap holds the key bindings shared by every terminal backend.
// Backends name keys the way Bubble Tea does ("a", "up", "esc", "ctrl+c")
// and the key map translates names to core keys.
package keymap

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termsnake/internal/core"
)

// KeyMap binds key names to snake controls.
type KeyMap struct {
	TurnLeft  key.Binding
	TurnRight key.Binding
	Forward   key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Quit      key.Binding
}

// Default returns the standard bindings: A/D turn relative to the heading,
// W keeps going, arrows pick an absolute heading.
func Default() KeyMap {
	return KeyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "turn right"),
		),
		Forward: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "forward"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "Q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// Name is a key name as produced by a backend.
type Name string

func (n Name) String() string {
	return string(n)
}

// Lookup translates a key to a core key, or core.KeyNone if unbound.
func (km KeyMap) Lookup(k fmt.Stringer) core.Key {
	switch {
	case key.Matches(k, km.Quit):
		return core.KeyQuit
	case key.Matches(k, km.TurnLeft):
		return core.KeyTurnLeft
	case key.Matches(k, km.TurnRight):
		return core.KeyTurnRight
	case key.Matches(k, km.Forward):
		return core.KeyForward
	case key.Matches(k, km.Up):
		return core.KeyUp
	case key.Matches(k, km.Down):
		return core.KeyDown
	case key.Matches(k, km.Left):
		return core.KeyLeft
	case key.Matches(k, km.Right):
		return core.KeyRight
	}
	return core.KeyNone
}

// ShortHelp returns bindings for the compact help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.TurnLeft, km.TurnRight, km.Forward, km.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.TurnLeft, km.TurnRight, km.Forward},
		{km.Up, km.Down, km.Left, km.Right},
		{km.Quit},
	}
}
