package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pan     key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Series  key.Binding
	Records key.Binding
	Sidebar key.Binding
	Open    key.Binding
	Paste   key.Binding
	Export  key.Binding
	Refetch key.Binding
	Help    key.Binding
	Close   key.Binding
	Quit    key.Binding

	Left  key.Binding
	Right key.Binding
	CO2   key.Binding
	CH4   key.Binding
	Temp  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pan:     key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→/drag", "pan")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/wheel", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		Series:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "series")),
		Records: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "records")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "files")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "open")),
		Paste:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
		Refetch: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refetch")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		CO2:   key.NewBinding(key.WithKeys("1")),
		CH4:   key.NewBinding(key.WithKeys("2")),
		Temp:  key.NewBinding(key.WithKeys("3")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pan, k.ZoomIn, k.ZoomOut, k.Reset, k.Series, k.Sidebar, k.Paste, k.Records, k.Export, k.Refetch, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pan, k.ZoomIn, k.ZoomOut, k.Reset},
		{k.Series, k.Records, k.Export, k.Refetch},
		{k.Sidebar, k.Open, k.Paste, k.Close},
		{k.Help, k.Quit},
	}
}
