// Package ui holds the minimal contracts shared by every tuikit widget.
package ui

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// Static is a Renderable that always renders the same string.
type Static string

// View implements Renderable.
func (s Static) View() string {
	return string(s)
}
