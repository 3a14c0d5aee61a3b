package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui"
)

const defaultSidebarWidth = 24

// SidebarProps configures a Sidebar. IsOpen is owned by the caller; Toggle
// asks the caller to flip it.
type SidebarProps struct {
	IsOpen  bool
	Toggle  func()
	Content ui.Renderable
	// Width is the inner width in cells. Zero uses a default.
	Width int
}

// Sidebar is a collapsible side panel with a close control.
type Sidebar struct {
	BaseComponent
	props    SidebarProps
	closeBtn *Button
	keys     SidebarKeyMap
	log      *logger.Logger
}

// NewSidebar creates a sidebar.
func NewSidebar(props SidebarProps, opts ...Option) *Sidebar {
	o := applyOptions(opts)
	s := &Sidebar{
		BaseComponent: NewBaseComponent(),
		keys:          DefaultSidebarKeyMap(),
		log:           o.log.WithComponent("sidebar"),
	}
	s.closeBtn = NewButton("×").WithAriaLabel("Close Sidebar").WithClasses(ClassCloseButton).OnPress(s.Toggle)
	s.SetProps(props)
	return s
}

// SetProps applies new props.
func (s *Sidebar) SetProps(props SidebarProps) {
	if props.Width <= 0 {
		props.Width = defaultSidebarWidth
	}
	s.props = props
	if props.IsOpen {
		s.SetClasses(ClassSidebar, ClassOpen)
	} else {
		s.SetClasses(ClassSidebar)
	}
}

// IsOpen reports the open state last supplied by the caller.
func (s *Sidebar) IsOpen() bool {
	return s.props.IsOpen
}

// Toggle invokes the toggle callback.
func (s *Sidebar) Toggle() {
	if s.props.Toggle == nil {
		s.log.Debug("sidebar toggle requested without a callback")
		return
	}
	s.props.Toggle()
}

// CloseButton returns the close control.
func (s *Sidebar) CloseButton() *Button {
	return s.closeBtn
}

// HandleKey toggles on the toggle binding.
func (s *Sidebar) HandleKey(msg tea.KeyMsg) bool {
	if !key.Matches(msg, s.keys.Toggle) {
		return false
	}
	s.Toggle()
	return true
}

// Update routes key presses to HandleKey.
func (s *Sidebar) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		s.HandleKey(keyMsg)
	}
	return nil
}

// KeyMap returns the sidebar bindings for help rendering.
func (s *Sidebar) KeyMap() SidebarKeyMap {
	return s.keys
}

// View renders the sidebar with the default context.
func (s *Sidebar) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel while open and nothing while closed.
func (s *Sidebar) ViewWithContext(ctx RenderContext) string {
	if !s.props.IsOpen {
		return ""
	}

	inner := ctx.WithConstraints(WithMaxWidth(s.props.Width)).WithSize(s.props.Width, 0)
	panel := NewContainer(
		HStack(s.closeBtn).WithConstraints(WithMaxWidth(s.props.Width)),
		HorizontalDivider().WithWidth(s.props.Width).WithAppliers(Foreground(PaletteNeutral)),
	).WithWidth(s.props.Width)
	if s.props.Content != nil {
		panel.Add(s.props.Content)
	}
	panel.SetClasses(s.Classes()...)
	return panel.ViewWithContext(inner)
}
