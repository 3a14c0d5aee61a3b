package components

import "github.com/charmbracelet/lipgloss"

// Button is a pressable label. The host decides which input presses it.
type Button struct {
	BaseComponent
	label     string
	ariaLabel string
	onPress   func()
	disabled  bool
	active    bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx).Render(b.label)
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	style := b.ResolveStyle(ctx)
	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// Press invokes the press handler unless the button is disabled.
// It reports whether a handler ran.
func (b *Button) Press() bool {
	if b.disabled || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// OnPress sets the press handler.
func (b *Button) OnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithAriaLabel sets the accessible name announced instead of the label.
func (b *Button) WithAriaLabel(label string) *Button {
	b.ariaLabel = label
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// WithClasses attaches style tokens.
func (b *Button) WithClasses(tokens ...StyleToken) *Button {
	b.AddClasses(tokens...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// AriaLabel returns the accessible name, falling back to the label.
func (b *Button) AriaLabel() string {
	if b.ariaLabel != "" {
		return b.ariaLabel
	}
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}
