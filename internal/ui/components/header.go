package components

import "github.com/charmbracelet/lipgloss"

// Attributes are pass-through attributes of a banner. Class tokens are
// resolved through the style sheet; the rest is carried for the host.
type Attributes struct {
	ID    string
	Class StyleToken
	Title string
	Extra map[string]string
}

// Map flattens the attributes, leaving out empty values.
func (a Attributes) Map() map[string]string {
	out := make(map[string]string, len(a.Extra)+3)
	for k, v := range a.Extra {
		out[k] = v
	}
	if a.ID != "" {
		out["id"] = a.ID
	}
	if a.Class != "" {
		out["class"] = string(a.Class)
	}
	if a.Title != "" {
		out["title"] = a.Title
	}
	return out
}

// HeaderProps configures a HeaderBanner.
type HeaderProps struct {
	Message  string
	Subtitle string
	Attrs    Attributes
}

// HeaderBanner shows a message in a banner.
type HeaderBanner struct {
	BaseComponent
	props HeaderProps
}

// NewHeaderBanner creates a banner.
func NewHeaderBanner(props HeaderProps) *HeaderBanner {
	h := &HeaderBanner{
		BaseComponent: NewBaseComponent(),
		props:         props,
	}
	h.SetClasses(ClassHeader, props.Attrs.Class)
	return h
}

// View renders the banner.
func (h *HeaderBanner) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the banner with the given context.
func (h *HeaderBanner) ViewWithContext(ctx RenderContext) string {
	style := h.ResolveStyle(ctx)
	if width := ctx.AvailableWidth(0); width > 0 {
		style = style.Width(width)
	}

	if h.props.Subtitle == "" {
		return style.Render(h.props.Message)
	}
	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		h.props.Message,
		lipgloss.NewStyle().Faint(true).Render(h.props.Subtitle),
	))
}

// WithSubtitle adds a second, fainter line.
func (h *HeaderBanner) WithSubtitle(subtitle string) *HeaderBanner {
	h.props.Subtitle = subtitle
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *HeaderBanner) WithAppliers(appliers ...StyleFunc) *HeaderBanner {
	h.SetAppliers(appliers...)
	return h
}

// Message returns the banner message.
func (h *HeaderBanner) Message() string {
	return h.props.Message
}

// Subtitle returns the banner subtitle.
func (h *HeaderBanner) Subtitle() string {
	return h.props.Subtitle
}

// Attributes returns the pass-through attributes.
func (h *HeaderBanner) Attributes() Attributes {
	return h.props.Attrs
}
