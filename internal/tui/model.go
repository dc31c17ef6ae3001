package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davibonetto/titan-cli/internal/monitor"
	"github.com/davibonetto/titan-cli/internal/notify"
)

// Model represents the dashboard state
type Model struct {
	services      []ServiceState
	width         int
	height        int
	lastUpdate    time.Time
	quitting      bool
	checking      bool
	rounds        int
	watcher       *monitor.Watcher
	watcherCancel func()
	notifier      *notify.Notifier
	spinner       spinner.Model
	selectedIndex int
	showDetail    bool
}

// ServiceState tracks the latest result for one registry entry
type ServiceState struct {
	Service   monitor.Service
	Outcome   monitor.Outcome
	CheckedAt time.Time
	Checked   bool
}

// NewModel creates a dashboard listing services in registry order
func NewModel(services []monitor.Service, w *monitor.Watcher, cancel func(), n *notify.Notifier) Model {
	states := make([]ServiceState, len(services))
	for i, svc := range services {
		states[i] = ServiceState{Service: svc}
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(colorChecking)

	return Model{
		services:      states,
		watcher:       w,
		watcherCancel: cancel,
		notifier:      n,
		spinner:       s,
		lastUpdate:    time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForEvents(m.watcher),
		m.spinner.Tick,
		doTick(),
	)
}

// eventMsg wraps a watcher event for Bubble Tea
type eventMsg monitor.Event

// watcherDoneMsg is sent once the watcher's channel is closed
type watcherDoneMsg struct{}

// waitForEvents listens for watcher events
func waitForEvents(w *monitor.Watcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return watcherDoneMsg{}
		}
		return eventMsg(ev)
	}
}

// tickMsg is sent on every tick
type tickMsg time.Time

// doTick returns a command that waits for the next tick
func doTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
