package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model. Keys go to the bus listeners first, so an
// open dialog sees Escape before anything else; while the dialog is open
// every other key except quit is swallowed.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if !m.modalOpen {
			m.stars.Update(msg)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.bus.Dispatch(msg) {
		return nil
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.modal.Unmount()
		return tea.Quit
	}
	if m.modalOpen {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.OpenModal):
		m.openModal()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.BarUp):
		m.nudgeBar(barStep)
	case key.Matches(msg, m.keys.BarDown):
		m.nudgeBar(-barStep)
	default:
		if !m.sidebar.HandleKey(msg) {
			m.stars.Update(msg)
		}
	}
	return nil
}

// nudgeBar moves the first bar by delta, keeping it within ±100.
func (m *Model) nudgeBar(delta float64) {
	if len(m.barValues) == 0 {
		return
	}
	v := m.barValues[0] + delta
	if v > 100 {
		v = 100
	}
	if v < -100 {
		v = -100
	}
	m.barValues[0] = v
	m.rebuildBars()
}
