// internal/ui/keys.go
package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the application key bindings
type keyMap struct {
	Quit       key.Binding
	NextView   key.Binding
	Up         key.Binding
	Down       key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Sort       key.Binding
	Category   key.Binding
	ClearAll   key.Binding
	Search     key.Binding
	Add        key.Binding
	Increase   key.Binding
	Decrease   key.Binding
	Remove     key.Binding
	ClearCart  key.Binding
	Refresh    key.Binding
	CancelText key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextView:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextPage:   key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "prev page")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
		Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle category")),
		ClearAll:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear filters")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Add:        key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter", "add to cart")),
		Increase:   key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "more")),
		Decrease:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "less")),
		Remove:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		ClearCart:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear cart")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		CancelText: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
