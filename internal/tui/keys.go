package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Higher key.Binding
	Lower  key.Binding
	Again  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Higher: key.NewBinding(
			key.WithKeys("up", "h"),
			key.WithHelp("↑/h", "higher"),
		),
		Lower: key.NewBinding(
			key.WithKeys("down", "l"),
			key.WithHelp("↓/l", "lower"),
		),
		Again: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// playingKeyMap disables play-again while a round is open.
func playingKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Again.SetEnabled(false)
	return km
}

// endedKeyMap disables guessing once the game is over.
func endedKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Higher.SetEnabled(false)
	km.Lower.SetEnabled(false)
	return km
}

// bindings returns the enabled bindings in display order.
func (k KeyMap) bindings() []key.Binding {
	var out []key.Binding
	for _, b := range []key.Binding{k.Higher, k.Lower, k.Again, k.Quit} {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}
