package components

import "github.com/charmbracelet/bubbles/key"

// ModalKeyMap holds the modal's bindings.
type ModalKeyMap struct {
	Close key.Binding
}

// DefaultModalKeyMap binds Escape to the close callback.
func DefaultModalKeyMap() ModalKeyMap {
	return ModalKeyMap{
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close dialog")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ModalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close}
}

// FullHelp implements help.KeyMap.
func (k ModalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// RatingKeyMap holds the keyboard stand-ins for pointer movement and clicks.
type RatingKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Leave  key.Binding
	Direct key.Binding
}

// DefaultRatingKeyMap returns the rating bindings.
func DefaultRatingKeyMap() RatingKeyMap {
	return RatingKeyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "preview less")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "preview more")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "rate")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel preview")),
		Direct: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "rate directly")),
	}
}

// ShortHelp implements help.KeyMap.
func (k RatingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Direct}
}

// FullHelp implements help.KeyMap.
func (k RatingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Select, k.Direct, k.Leave}}
}

// SidebarKeyMap holds the sidebar bindings.
type SidebarKeyMap struct {
	Toggle key.Binding
}

// DefaultSidebarKeyMap binds ctrl+b to the toggle callback.
func DefaultSidebarKeyMap() SidebarKeyMap {
	return SidebarKeyMap{
		Toggle: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle sidebar")),
	}
}

// ShortHelp implements help.KeyMap.
func (k SidebarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle}
}

// FullHelp implements help.KeyMap.
func (k SidebarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
