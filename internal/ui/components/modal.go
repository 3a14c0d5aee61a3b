package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/events"
)

// ModalProps configures a Modal. IsOpen and OnClose are owned by the
// caller; the modal never changes IsOpen itself.
type ModalProps struct {
	IsOpen  *bool         `validate:"required"`
	OnClose func()        `validate:"required"`
	Content ui.Renderable `validate:"required"`

	Title            string
	ContentStyle     StyleToken
	CloseButtonStyle StyleToken
}

// Modal is a dialog shown only while open. While open it holds exactly one
// Escape listener on the key bus.
type Modal struct {
	BaseComponent
	props    ModalProps
	open     bool
	focused  bool
	onClose  func()
	closeBtn *Button
	keys     ModalKeyMap

	bus     *events.KeyBus
	ownsBus bool
	sub     events.Subscription

	err error
	log *logger.Logger
}

// NewModal creates a modal. Without WithKeyBus the modal owns a private bus
// fed by Update.
func NewModal(props ModalProps, opts ...Option) *Modal {
	o := applyOptions(opts)
	m := &Modal{
		BaseComponent: NewBaseComponent(),
		keys:          DefaultModalKeyMap(),
		bus:           o.bus,
		log:           o.log.WithComponent("modal"),
	}
	if m.bus == nil {
		m.bus = events.NewKeyBus(o.log)
		m.ownsBus = true
	}
	m.closeBtn = NewButton("Close").WithAriaLabel("Close Modal").OnPress(m.Dismiss)
	m.SetProps(props)
	return m
}

// SetProps applies a new set of props, as a re-render with new inputs
// would. Opening or closing acquires or releases the Escape listener.
func (m *Modal) SetProps(props ModalProps) {
	m.err = validateProps("Modal", props)
	reportInputErrors(m.log, m.err)

	m.props = props
	m.onClose = props.OnClose
	if m.onClose == nil {
		m.onClose = noop
	}
	m.SetClasses(ClassModal, props.ContentStyle)
	m.closeBtn.SetClasses(ClassCloseButton, props.CloseButtonStyle)

	open := false
	if props.IsOpen != nil {
		open = *props.IsOpen
	}
	m.SetOpen(open)
}

// SetOpen updates the open state the caller owns.
func (m *Modal) SetOpen(open bool) {
	if open == m.open {
		return
	}
	m.open = open
	if open {
		m.focused = true
		m.sub = m.bus.Subscribe("modal.escape", m.HandleKey)
		m.log.Debug("modal opened")
		return
	}
	m.release()
	m.log.Debug("modal closed")
}

// Unmount releases the Escape listener. The modal renders nothing
// afterwards until it is opened again.
func (m *Modal) Unmount() {
	m.open = false
	m.release()
}

func (m *Modal) release() {
	if m.sub != nil {
		m.sub.Unsubscribe()
		m.sub = nil
	}
	m.focused = false
}

// Dismiss invokes the close callback if the modal is open.
func (m *Modal) Dismiss() {
	if m.open {
		m.onClose()
	}
}

// HandleKey invokes the close callback on Escape while open.
func (m *Modal) HandleKey(msg tea.KeyMsg) bool {
	if !m.open || !key.Matches(msg, m.keys.Close) {
		return false
	}
	m.onClose()
	return true
}

// Update feeds key presses to the modal's private bus. A modal attached to
// a shared bus receives keys from the host's dispatch instead.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.ownsBus {
		m.bus.Dispatch(keyMsg)
	}
	return nil
}

// IsOpen reports whether the modal is showing.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Focused reports whether the modal took focus when it opened.
func (m *Modal) Focused() bool {
	return m.focused
}

// Subscribed reports whether the modal currently holds its Escape listener.
func (m *Modal) Subscribed() bool {
	return m.sub != nil
}

// CloseButton returns the close control.
func (m *Modal) CloseButton() *Button {
	return m.closeBtn
}

// KeyMap returns the modal bindings for help rendering.
func (m *Modal) KeyMap() ModalKeyMap {
	return m.keys
}

// Err returns the input validation errors of the last props, if any.
func (m *Modal) Err() error {
	return m.err
}

// Attributes returns the dialog's accessibility attributes.
func (m *Modal) Attributes() map[string]string {
	return map[string]string{
		"role":            "dialog",
		"aria-modal":      "true",
		"aria-labelledby": "modal-title",
		"tabindex":        "-1",
	}
}

// View renders the modal with the default context.
func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders nothing while closed. When the parent size is
// known the dialog is centred in it.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	if !m.open {
		return ""
	}

	body := VStack()
	if m.props.Title != "" {
		body.Add(TitleText(m.props.Title))
	}
	body.Add(m.closeBtn)
	if m.props.Content != nil {
		body.Add(m.props.Content)
	}

	box := NewContainer(body)
	box.SetClasses(m.Classes()...)
	dialog := box.ViewWithContext(ctx.WithSize(0, 0))

	if ctx.ParentWidth > 0 && ctx.ParentHeight > 0 {
		return lipgloss.Place(ctx.ParentWidth, ctx.ParentHeight, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}
