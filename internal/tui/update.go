package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davibonetto/titan-cli/internal/monitor"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle detail modal interactions
	if m.showDetail {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc", "enter":
				m.showDetail = false
				return m, nil
			}
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			if m.watcherCancel != nil {
				m.watcherCancel()
			}
			return m, tea.Quit
		case "enter":
			if len(m.services) > 0 {
				m.showDetail = true
			}
		case "up", "k", "shift+tab":
			m.moveSelection(-1)
		case "down", "j", "tab":
			m.moveSelection(1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case eventMsg:
		m.applyEvent(monitor.Event(msg))
		return m, waitForEvents(m.watcher)

	case watcherDoneMsg:
		m.checking = false
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m, doTick()
	}

	return m, nil
}

// applyEvent records a round start or merges a round's results
func (m *Model) applyEvent(ev monitor.Event) {
	if ev.Checking {
		m.checking = true
		return
	}

	m.checking = false
	m.rounds++
	m.lastUpdate = ev.CheckedAt

	for _, result := range ev.Results {
		idx := m.indexOf(result.Service.Name)
		if idx < 0 {
			m.services = append(m.services, ServiceState{Service: result.Service})
			idx = len(m.services) - 1
		}

		state := &m.services[idx]
		var previous monitor.Status
		if state.Checked {
			previous = state.Outcome.Status
		}
		if m.notifier != nil {
			m.notifier.NotifyStatusChange(result, previous)
		}

		state.Outcome = result.Outcome
		state.CheckedAt = result.CheckedAt
		state.Checked = true
	}

	m.clampSelection()
}

func (m *Model) indexOf(name string) int {
	for i, svc := range m.services {
		if svc.Service.Name == name {
			return i
		}
	}
	return -1
}

// moveSelection moves the selected index with wrap-around
func (m *Model) moveSelection(delta int) {
	if len(m.services) == 0 {
		return
	}
	m.selectedIndex = (m.selectedIndex + delta) % len(m.services)
	if m.selectedIndex < 0 {
		m.selectedIndex += len(m.services)
	}
}

// clampSelection ensures selection stays within range
func (m *Model) clampSelection() {
	if len(m.services) == 0 {
		m.selectedIndex = 0
		return
	}
	if m.selectedIndex >= len(m.services) {
		m.selectedIndex = len(m.services) - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
}
