package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Slider  key.Binding
	Play    key.Binding
	Reset   key.Binding
	Entity  key.Binding
	Regions key.Binding
	TopN    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Slider:  key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "year")),
		Play:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Entity:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "entity")),
		Regions: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "regions")),
		TopN:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "top N")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelpFor returns the footer bindings for the active tab.
func (k keyMap) shortHelpFor(tab int) []key.Binding {
	switch tab {
	case tabPyramid:
		return []key.Binding{k.NextTab, k.Slider, k.Play, k.Entity, k.Reset, k.Quit}
	case tabMedian:
		return []key.Binding{k.NextTab, k.Slider, k.Play, k.Reset, k.Quit}
	case tabGrowth:
		return []key.Binding{k.NextTab, k.Regions, k.TopN, k.Reset, k.Quit}
	}
	return []key.Binding{k.NextTab, k.Quit}
}

type pickerKeyMap struct {
	UpDown key.Binding
	Enter  key.Binding
	Close  key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		UpDown: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k pickerKeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Close}
}
