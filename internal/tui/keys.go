package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shown in the help line. Letter keys are not
// bindings; any a-z press is a guess.
type keyMap struct {
	Guess   key.Binding
	Hint    key.Binding
	NewGame key.Binding
	Again   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Guess: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z", "guess"),
		),
		Hint: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "hint"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new game"),
		),
		Again: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Hint, k.Again, k.NewGame, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
