package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Dashboard
	Capture      key.Binding
	Up           key.Binding
	Down         key.Binding
	Delete       key.Binding
	DismissError key.Binding

	// Acquire
	TypePath key.Binding

	// Review
	Confirm key.Binding
	Discard key.Binding

	// Confirmation overlay
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to dashboard"),
		),

		Capture: key.NewBinding(
			key.WithKeys("c", "s"),
			key.WithHelp("c", "Snap a meal"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Previous entry"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Next entry"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "Delete entry"),
		),
		DismissError: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "Dismiss error"),
		),

		TypePath: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Type a file path"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "Add to log"),
		),
		Discard: key.NewBinding(
			key.WithKeys("d", "esc"),
			key.WithHelp("d/esc", "Discard"),
		),

		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "No"),
		),
	}
}
