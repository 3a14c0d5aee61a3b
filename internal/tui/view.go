package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

const sidebarGap = 2

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.ctx
	if m.width > 0 {
		ctx = ctx.WithSize(m.width, m.height)
	}

	if m.modalOpen {
		return m.modal.ViewWithContext(ctx)
	}

	header := m.header.ViewWithContext(ctx)
	main := m.mainColumn(ctx)

	body := main
	offsetX := 0
	if sidebar := m.sidebar.ViewWithContext(ctx); sidebar != "" {
		offsetX = lipgloss.Width(sidebar) + sidebarGap
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, lipgloss.NewStyle().Width(sidebarGap).Render(""), main)
	}
	m.stars.SetOrigin(m.ratingX+offsetX, m.ratingY+lipgloss.Height(header))

	helpView := helpStyle.Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, helpView)
}

// mainColumn renders the table, bars and rating, recording where the
// stars land so mouse events can be mapped onto them.
func (m *Model) mainColumn(ctx components.RenderContext) string {
	sections := []string{
		sectionStyle.Render("Records"),
		m.table.ViewWithContext(ctx),
		sectionStyle.Render("Bars"),
	}
	barCtx := ctx.WithSize(40, 0)
	for _, bar := range m.bars {
		sections = append(sections, bar.ViewWithContext(barCtx))
	}
	sections = append(sections, sectionStyle.Render("Rating"))

	above := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.ratingX, m.ratingY = 0, lipgloss.Height(above)

	stars := lipgloss.JoinHorizontal(lipgloss.Top,
		m.stars.ViewWithContext(ctx),
		captionStyle.Render(fmt.Sprintf("  %d/%d", m.rating, components.RatingLevels)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, above, stars)
}

// RenderStatic renders the showcase once, without the help line, for
// output that is not a terminal.
func RenderStatic(opts Options, width int) string {
	m := NewModel(opts)
	m.width = width
	ctx := m.ctx
	if width > 0 {
		ctx = ctx.WithSize(width, 0)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header.ViewWithContext(ctx), m.mainColumn(ctx))
}
