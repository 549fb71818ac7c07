package viewer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Save     key.Binding
	Quit     key.Binding
}

func newKeyMap(vp viewport.KeyMap) keyMap {
	return keyMap{
		Up:       vp.Up,
		Down:     vp.Down,
		PageUp:   vp.PageUp,
		PageDown: vp.PageDown,
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save svg"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Save, k.Quit},
	}
}
