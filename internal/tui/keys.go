package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

// keyMap holds the showcase's own bindings and those of the widgets it
// routes keys to, so the help line lists everything.
type keyMap struct {
	OpenModal key.Binding
	BarUp     key.Binding
	BarDown   key.Binding
	Help      key.Binding
	Quit      key.Binding

	Sidebar components.SidebarKeyMap
	Rating  components.RatingKeyMap
	Modal   components.ModalKeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		OpenModal: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "open dialog")),
		BarUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "raise bar")),
		BarDown:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "lower bar")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Sidebar:   components.DefaultSidebarKeyMap(),
		Rating:    components.DefaultRatingKeyMap(),
		Modal:     components.DefaultModalKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenModal, k.Sidebar.Toggle, k.Rating.Direct, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenModal, k.Modal.Close, k.Sidebar.Toggle},
		{k.Rating.Prev, k.Rating.Next, k.Rating.Select, k.Rating.Direct, k.Rating.Leave},
		{k.BarUp, k.BarDown, k.Help, k.Quit},
	}
}
