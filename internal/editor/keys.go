package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Place   key.Binding
	Props   key.Binding
	Export  key.Binding
	UpDown  key.Binding
	Enter   key.Binding
	NextFld key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Place:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "arm type")),
		Props:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "properties")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "palette")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		NextFld: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.Props, k.Export, k.UpDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Place, k.Props, k.Export, k.UpDown, k.Quit}}
}

type propsKeyMap struct {
	keyMap
}

func (k propsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.NextFld, k.Close, k.Quit}
}

func (k propsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.NextFld, k.Close, k.Quit}}
}
