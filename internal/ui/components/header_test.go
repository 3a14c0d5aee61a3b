package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHeaderBanner(t *testing.T) {
	h := NewHeaderBanner(HeaderProps{
		Message: "My App",
		Attrs: Attributes{
			ID:    "top",
			Class: "brand wide",
			Extra: map[string]string{"role": "banner"},
		},
	})

	assert.Equal(t, "My App", h.Message())
	assert.Equal(t, ClassList{ClassHeader, "brand", "wide"}, h.Classes())
	assert.Equal(t, map[string]string{"id": "top", "class": "brand wide", "role": "banner"}, h.Attributes().Map())
	assert.Contains(t, visible(h.View()), "My App")
}

func TestHeaderBannerSubtitle(t *testing.T) {
	h := NewHeaderBanner(HeaderProps{Message: "Reports"}).WithSubtitle("quarterly")
	lines := visibleLines(h.View())

	a := assert.New(t)
	a.Len(lines, 2)
	a.Contains(lines[0], "Reports")
	a.Contains(lines[1], "quarterly")
}

func TestHeaderBannerFillsWidth(t *testing.T) {
	h := NewHeaderBanner(HeaderProps{Message: "wide"})
	out := h.ViewWithContext(DefaultContext().WithSize(30, 0))
	assert.Equal(t, 30, lipgloss.Width(out))
}
