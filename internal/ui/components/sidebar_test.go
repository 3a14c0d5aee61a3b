package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/tuikit/internal/ui"
)

func TestSidebarClosedRendersNothing(t *testing.T) {
	s := NewSidebar(SidebarProps{Content: ui.Static("Sidebar Content")})

	assert.Empty(t, s.View())
	assert.Equal(t, ClassList{ClassSidebar}, s.Classes())
}

func TestSidebarOpen(t *testing.T) {
	s := NewSidebar(SidebarProps{IsOpen: true, Content: ui.Static("Sidebar Content"), Width: 20})
	out := visible(s.View())

	assert.Equal(t, ClassList{ClassSidebar, ClassOpen}, s.Classes())
	assert.Contains(t, out, "×")
	assert.Contains(t, out, "Sidebar Content")
}

func TestSidebarToggle(t *testing.T) {
	toggles := 0
	s := NewSidebar(SidebarProps{IsOpen: true, Toggle: func() { toggles++ }})

	assert.True(t, s.CloseButton().Press())
	assert.True(t, s.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlB}))
	assert.False(t, s.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
	s.Update(tea.KeyMsg{Type: tea.KeyCtrlB})

	assert.Equal(t, 3, toggles)
	assert.True(t, s.IsOpen(), "the caller flips the state")
}

func TestSidebarToggleWithoutCallback(t *testing.T) {
	s := NewSidebar(SidebarProps{IsOpen: true})
	assert.NotPanics(t, func() { s.Toggle() })
}
