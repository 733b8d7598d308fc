package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Dashboard key.Binding
	Tasks     key.Binding
	Team      key.Binding
	NextTab   key.Binding

	// Task management
	Cycle key.Binding // Advance task status
	New   key.Binding // Create new task

	// Create dialog
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding
	Right     key.Binding
	Submit    key.Binding

	// General
	Help   key.Binding
	Quit   key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Tasks: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "tasks"),
		),
		Team: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "team"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "cycle status"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "create"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Cycle, k.New, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Tasks, k.Team, k.NextTab}, // Pages
		{k.Up, k.Down, k.PageUp, k.PageDown},      // Navigation
		{k.Cycle, k.New},                          // Task management
		{k.NextField, k.Left, k.Right, k.Submit},  // Create dialog
		{k.Escape, k.Help, k.Quit},                // General
	}
}

// formKeyMap is the help shown inside the create dialog.
type formKeyMap KeyMap

// ShortHelp returns the dialog keybindings.
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Left, k.Right, k.Submit, k.Escape}
}

// FullHelp returns the dialog keybindings.
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
