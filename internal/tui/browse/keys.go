package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Pick       key.Binding
	Search     key.Binding
	Load       key.Binding
	Unload     key.Binding
	Restore    key.Binding
	Status     key.Binding
	Rescan     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pick:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Load:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load")),
		Unload:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unload")),
		Restore:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
		Status:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Rescan:     key.NewBinding(key.WithKeys("f5", "ctrl+r"), key.WithHelp("f5", "rescan")),
		ScrollUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "scroll loaded")),
		ScrollDown: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "scroll loaded")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Search, k.Load, k.Unload, k.Restore, k.Status, k.Rescan, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pick, k.Search},
		{k.Load, k.Unload, k.Restore, k.Status},
		{k.Rescan, k.ScrollUp, k.ScrollDown, k.Quit},
	}
}
